package course

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/mooclabs/coursematch/internal/resume"
	"github.com/mooclabs/coursematch/internal/skills"
	"go.uber.org/zap"
)

// rawCourse mirrors the upstream catalog schema, which is inconsistent:
// several overlapping link fields, stringly-typed numbers and a free-form
// paid flag. Everything is canonicalized here, once, at load time.
type rawCourse struct {
	ID         string  `mapstructure:"course_id"`
	Name       string  `mapstructure:"course_name"`
	Instructor string  `mapstructure:"instructor"`
	Platform   string  `mapstructure:"platform"`
	Domain     string  `mapstructure:"domain"`
	Level      string  `mapstructure:"level"`
	Difficulty string  `mapstructure:"difficulty"`
	Rating     float64 `mapstructure:"course_rating"`
	AltRating  float64 `mapstructure:"rating"`
	Enrolled   int     `mapstructure:"Number_of_student_enrolled"`
	AltEnroll  int     `mapstructure:"enrolled"`
	IsPaid     string  `mapstructure:"is_paid"`
	Skills     any     `mapstructure:"skills"`

	CourseURL  string `mapstructure:"course_url"`
	CourseLink string `mapstructure:"course_link"`
	URL        string `mapstructure:"url"`
	CourseHref string `mapstructure:"course_href"`
	Sources    any    `mapstructure:"sources"`
}

// Load reads a JSON catalog file, either a bare array of course records
// or an object with a "courses" key. Malformed records are skipped with a
// warning; a single bad row never fails the whole load.
func Load(path string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer file.Close()

	var payload any
	if err := json.NewDecoder(file).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing catalog %q: %w", path, err)
	}

	records, err := catalogRecords(payload)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}

	courses := make([]*Course, 0, len(records))
	for i, record := range records {
		course, err := normalizeRecord(record)
		if err != nil {
			logger.Warn("skipping malformed course record",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		courses = append(courses, course)
	}

	logger.Info("course catalog loaded",
		zap.String("path", path),
		zap.Int("courses", len(courses)),
		zap.Int("skipped", len(records)-len(courses)),
	)

	return NewCatalog(courses), nil
}

func catalogRecords(payload any) ([]any, error) {
	switch typed := payload.(type) {
	case []any:
		return typed, nil
	case map[string]any:
		if list, ok := typed["courses"].([]any); ok {
			return list, nil
		}
		return nil, fmt.Errorf("object form requires a \"courses\" array")
	default:
		return nil, fmt.Errorf("expected an array of course records")
	}
}

// normalizeRecord decodes one raw record and canonicalizes it into a
// Course. Weak typing tolerates numbers shipped as strings.
func normalizeRecord(record any) (*Course, error) {
	var raw rawCourse
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(record); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return nil, fmt.Errorf("record has no course_id")
	}
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, fmt.Errorf("record %s has no course_name", id)
	}

	rating := raw.Rating
	if rating == 0 {
		rating = raw.AltRating
	}
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	enrolled := raw.Enrolled
	if enrolled == 0 {
		enrolled = raw.AltEnroll
	}
	if enrolled < 0 {
		enrolled = 0
	}

	return &Course{
		ID:         id,
		Name:       name,
		Instructor: strings.TrimSpace(raw.Instructor),
		Platform:   strings.TrimSpace(raw.Platform),
		Domain:     skills.Normalize(raw.Domain),
		Level:      courseLevel(raw.Level, raw.Difficulty),
		Rating:     rating,
		Enrolled:   enrolled,
		IsPaid:     paidFlag(raw.IsPaid),
		Skills:     skills.NormalizeAll(stringList(raw.Skills)),
		URL:        canonicalURL(&raw),
	}, nil
}

// courseLevel maps the upstream level or difficulty tag onto the
// experience-level ladder used for matching.
func courseLevel(level, difficulty string) resume.Level {
	if parsed := resume.ParseLevel(level); parsed != resume.LevelUnknown {
		return parsed
	}

	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "beginner", "introductory":
		return resume.LevelEntry
	case "intermediate":
		return resume.LevelMid
	case "advanced", "expert":
		return resume.LevelSenior
	default:
		return resume.LevelUnknown
	}
}

func paidFlag(value string) Paid {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "paid", "yes", "1":
		return PaidYes
	case "false", "free", "no", "0":
		return PaidFree
	default:
		return PaidUnknown
	}
}

// stringList coerces the upstream list-ish shapes into a string slice: a
// real JSON array, a comma-separated string, or a stringified Python list
// like "['a', 'b']".
func stringList(value any) []string {
	switch typed := value.(type) {
	case nil:
		return nil
	case []any:
		list := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	case []string:
		return typed
	case string:
		trimmed := strings.TrimSpace(typed)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
		}
		parts := strings.Split(trimmed, ",")
		list := make([]string, 0, len(parts))
		for _, part := range parts {
			part = strings.Trim(strings.TrimSpace(part), `'"`)
			if part != "" {
				list = append(list, part)
			}
		}
		return list
	default:
		return nil
	}
}

// canonicalURL picks the course link once at load time: direct link
// fields first, then the sources column in its string or stringified-list
// forms. The first absolute http(s) URL wins.
func canonicalURL(raw *rawCourse) string {
	for _, candidate := range []string{raw.CourseURL, raw.CourseLink, raw.URL, raw.CourseHref} {
		if isHTTPURL(candidate) {
			return strings.TrimSpace(candidate)
		}
	}

	for _, candidate := range stringList(raw.Sources) {
		if isHTTPURL(candidate) {
			return strings.TrimSpace(candidate)
		}
	}

	return ""
}

func isHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
