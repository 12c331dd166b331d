package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mooclabs/coursematch/internal/ai"
	"github.com/mooclabs/coursematch/internal/ai/gemini"
	"github.com/mooclabs/coursematch/internal/course"
	"github.com/mooclabs/coursematch/internal/document"
	"github.com/mooclabs/coursematch/internal/logger"
	"github.com/mooclabs/coursematch/internal/recommend"
	"github.com/mooclabs/coursematch/internal/resume"
	"github.com/mooclabs/coursematch/internal/secrets"
	"github.com/mooclabs/coursematch/internal/skills"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowReasons = "Show match reasons"
	PromptDumpToFile  = "Dump recommendations to file"
	PromptExit        = "Exit"

	maxDisplayedSkills = 20
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReasons, PromptDumpToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run <resume-file>",
	Short: "Analyze a resume (PDF or DOCX) and print matching courses",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("top-k", "k", 0, "maximum number of recommendations (default from config)")
	runCmd.Flags().BoolP("no-prompt", "y", false, "print recommendations and exit without the interactive prompt")

	viper.BindPFlag("recommend.top-k", runCmd.Flags().Lookup("top-k"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, resumePath string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting coursematch", zap.String("version", version))

	if config.Catalog == "" {
		logger.Fatal("course catalog path is required",
			zap.String("hint", "set the catalog key in the config, the --catalog flag or COURSEMATCH_CATALOG"),
		)
	}

	catalog, err := course.Load(config.Catalog, logger)
	if err != nil {
		logger.Fatal("loading course catalog", zap.Error(err))
	}

	if catalog.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "course catalog is empty"))
		return
	}

	analyzer := prepareAnalyzer(ctx, config, logger)

	profile, err := analyzer.Analyze(ctx, resumePath)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrUnreadable):
			logger.Fatal("resume file could not be read; upload a valid PDF or DOCX", zap.Error(err))
		case errors.Is(err, resume.ErrAnalysisFailed):
			logger.Fatal("resume carried no usable signal; try a resume with more detail", zap.Error(err))
		default:
			logger.Fatal("analyzing resume", zap.Error(err))
		}
	}

	printProfile(profile)

	engine := recommend.NewEngine(config.Recommend, logger)

	topK := engine.TopK()
	recommendations := engine.Recommend(profile, catalog, topK)

	if len(recommendations) == 0 {
		logger.Info("exiting", zap.String("reason", "no courses matched the profile"))
		return
	}

	printRecommendations(recommendations)

	if cmd.Flag("no-prompt").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, recommendations); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, recommendations []*recommend.Recommendation) error {
	switch action {
	case PromptShowReasons:
		for _, rec := range recommendations {
			fmt.Printf("%s (%d%%)\n", rec.CourseName, rec.MatchPercentage)
			for _, reason := range rec.MatchReasons {
				fmt.Printf("  - %s\n", reason)
			}
		}
		return nil
	case PromptDumpToFile:
		filename, err := recommend.DumpToTmpFile(recommendations)
		if err != nil {
			return fmt.Errorf("dump recommendations to file: %w", err)
		}
		logger.Info("dumping recommendations to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// prepareAnalyzer wires the heuristic classifier and, when enabled, the
// Gemini-backed extractor as the primary classifier with the heuristic
// one as fallback.
func prepareAnalyzer(ctx context.Context, config *Config, logger *zap.Logger) *resume.Analyzer {
	vocab := skills.Default()
	heuristic := resume.NewClassifier(
		config.Analyzer,
		resume.DefaultRules(vocab, config.Analyzer),
		logger,
	)

	if config.AI == nil || !config.AI.Enabled {
		return resume.NewAnalyzer(heuristic, nil, logger)
	}

	aiClassifier, err := newAIClassifier(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("ai classifier unavailable, using heuristic rules", zap.Error(err))
		return resume.NewAnalyzer(heuristic, nil, logger)
	}

	return resume.NewAnalyzer(aiClassifier, heuristic, logger)
}

func newAIClassifier(ctx context.Context, cfg *AIConfig, baseLogger *zap.Logger) (*ai.Classifier, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithProvider(baseLogger, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	extractor := gemini.NewExtractor(generator, genLogger, cfg.Gemini.MaxLogLength)

	return ai.NewClassifier(extractor), nil
}

func printProfile(profile *resume.Profile) {
	displayed := profile.Skills
	if len(displayed) > maxDisplayedSkills {
		displayed = displayed[:maxDisplayedSkills]
	}

	fmt.Printf("Detected %d skills: %s\n", profile.SkillCount, strings.Join(displayed, ", "))
	fmt.Printf("Experience level: %s\n", profile.ExperienceLevel)
	if len(profile.Domains) > 0 {
		fmt.Printf("Domains: %s\n", strings.Join(profile.Domains, ", "))
	}
	for _, entry := range profile.Education {
		fmt.Printf("Education: %s\n", entry)
	}
	fmt.Println()
}

func printRecommendations(recommendations []*recommend.Recommendation) {
	for i, rec := range recommendations {
		line := fmt.Sprintf("%2d. [%3d%%] %s", i+1, rec.MatchPercentage, rec.CourseName)
		if rec.Platform != "" {
			line += fmt.Sprintf(" (%s)", rec.Platform)
		}
		if rec.Rating > 0 {
			line += fmt.Sprintf(" %.1f*", rec.Rating)
		}
		if rec.CourseURL != "" {
			line += " " + rec.CourseURL
		}
		fmt.Println(line)
	}
	fmt.Println()
}

// printJSON renders any value as indented JSON for the catalog commands.
func printJSON(v any) {
	pretty, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(pretty))
}
