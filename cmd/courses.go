package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/mooclabs/coursematch/internal/course"
	"github.com/mooclabs/coursematch/internal/resume"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	applogger "github.com/mooclabs/coursematch/internal/logger"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [course-id]",
	Short: "List the courses in the catalog, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog := mustCatalog()

		if len(args) == 1 {
			detail, err := lookupCourse(catalog, args[0])
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(detail)
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		listed := 0
		for _, c := range catalog.All() {
			if limit > 0 && listed >= limit {
				break
			}
			printCourse(c)
			listed++
		}
		fmt.Printf("total: %d\n", catalog.Len())
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search courses by name, instructor or skill",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog := mustCatalog()

		limit, _ := cmd.Flags().GetInt("limit")
		results := catalog.Search(strings.Join(args, " "), limit)
		for _, c := range results {
			printCourse(c)
		}
		fmt.Printf("matched: %d\n", len(results))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog statistics",
	Run: func(_ *cobra.Command, _ []string) {
		printJSON(mustCatalog().Statistics())
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)

	coursesCmd.Flags().IntP("limit", "l", 0, "maximum number of courses to list (0 for all)")
	searchCmd.Flags().IntP("limit", "l", 10, "maximum number of search results")
}

// mustCatalog loads the configured catalog or exits.
func mustCatalog() *course.Catalog {
	logger, err := applogger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config.Catalog == "" {
		logger.Fatal("course catalog path is required",
			zap.String("hint", "set the catalog key in the config, the --catalog flag or COURSEMATCH_CATALOG"),
		)
	}

	catalog, err := course.Load(config.Catalog, logger)
	if err != nil {
		logger.Fatal("loading course catalog", zap.Error(err))
	}

	return catalog
}

// lookupCourse resolves a single catalog entry by id.
func lookupCourse(catalog *course.Catalog, id string) (string, error) {
	c := catalog.FindByID(strings.TrimSpace(id))
	if c == nil {
		return "", fmt.Errorf("course %q not found in the catalog", id)
	}
	return courseDetail(c), nil
}

// courseDetail renders every known field of one course, one per line.
// Empty fields are omitted.
func courseDetail(c *course.Course) string {
	lines := []string{fmt.Sprintf("%s %s", c.ID, c.Name)}

	if c.Instructor != "" {
		lines = append(lines, "instructor: "+c.Instructor)
	}
	if c.Platform != "" {
		lines = append(lines, "platform: "+c.Platform)
	}
	if c.Domain != "" {
		lines = append(lines, "domain: "+c.Domain)
	}
	if c.Level != resume.LevelUnknown {
		lines = append(lines, "level: "+string(c.Level))
	}
	if c.Rating > 0 {
		lines = append(lines, fmt.Sprintf("rating: %.1f", c.Rating))
	}
	if c.Enrolled > 0 {
		lines = append(lines, fmt.Sprintf("enrolled: %d", c.Enrolled))
	}
	if c.IsPaid != course.PaidUnknown {
		lines = append(lines, "paid: "+string(c.IsPaid))
	}
	if len(c.Skills) > 0 {
		lines = append(lines, "skills: "+strings.Join(c.Skills, ", "))
	}
	if c.URL != "" {
		lines = append(lines, "url: "+c.URL)
	}

	return strings.Join(lines, "\n")
}

func printCourse(c *course.Course) {
	line := fmt.Sprintf("%s %s", c.ID, c.Name)
	if c.Platform != "" {
		line += fmt.Sprintf(" / %s", c.Platform)
	}
	if c.Rating > 0 {
		line += fmt.Sprintf(" / %.1f*", c.Rating)
	}
	if c.URL != "" {
		line += " / " + c.URL
	}
	fmt.Println(line)
}
