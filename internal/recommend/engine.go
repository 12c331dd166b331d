package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mooclabs/coursematch/internal/course"
	"github.com/mooclabs/coursematch/internal/resume"
	"go.uber.org/zap"
)

// Engine ranks courses against profiles. It holds only read-only
// configuration, so one engine serves concurrent requests. It never
// mutates the catalog or the profile it is given.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine builds an engine with the given configuration.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg.withDefaults(), logger: logger}
}

// TopK returns the configured default result count.
func (e *Engine) TopK() int {
	return e.cfg.TopK
}

// Recommend scores every course in the catalog against the profile and
// returns up to topK recommendations, best first. Courses below the
// minimum match score are excluded entirely. Results are ordered by match
// percentage, then rating, then enrollment, then course ID, so the output
// is deterministic for identical inputs.
func (e *Engine) Recommend(profile *resume.Profile, catalog *course.Catalog, topK int) []*Recommendation {
	if profile == nil || catalog == nil || topK <= 0 {
		return nil
	}

	results := make([]*Recommendation, 0, catalog.Len())
	for _, c := range catalog.All() {
		if c == nil || c.ID == "" {
			// Malformed rows are skipped, never fail the request.
			continue
		}

		rec := e.score(profile, c)
		if rec.MatchPercentage < e.cfg.MinimumMatchScore {
			continue
		}
		results = append(results, rec)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.MatchPercentage != b.MatchPercentage {
			return a.MatchPercentage > b.MatchPercentage
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Enrolled != b.Enrolled {
			return a.Enrolled > b.Enrolled
		}
		return a.CourseID < b.CourseID
	})

	if len(results) > topK {
		results = results[:topK]
	}

	e.logger.Debug("recommendations computed",
		zap.Int("catalog_size", catalog.Len()),
		zap.Int("returned", len(results)),
	)

	return results
}

// reason pairs a human-readable explanation with the weighted
// contribution of its sub-score, used for ordering.
type reason struct {
	text         string
	contribution float64
}

func (e *Engine) score(profile *resume.Profile, c *course.Course) *Recommendation {
	reasons := make([]reason, 0, 3)

	overlap := overlappingSkills(profile, c)
	// Denominator floor of 1 keeps skill-less courses at zero instead of
	// dividing by zero.
	skillScore := float64(len(overlap)) / math.Max(1, float64(len(c.Skills)))
	if len(overlap) > 0 {
		reasons = append(reasons, reason{
			text:         skillReason(overlap, e.cfg.MaxReasonSkills),
			contribution: e.cfg.SkillWeight * skillScore,
		})
	}

	domainScore, domainText := e.domainAffinity(profile, c)
	if domainScore > 0 {
		reasons = append(reasons, reason{
			text:         domainText,
			contribution: e.cfg.DomainWeight * domainScore,
		})
	}

	levelScore, levelText := levelFit(profile.ExperienceLevel, c.Level)
	if levelScore > 0 {
		reasons = append(reasons, reason{
			text:         levelText,
			contribution: e.cfg.LevelWeight * levelScore,
		})
	}

	total := e.cfg.SkillWeight*skillScore + e.cfg.DomainWeight*domainScore + e.cfg.LevelWeight*levelScore

	percentage := int(math.Round(total * 100))
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].contribution > reasons[j].contribution
	})
	if len(reasons) > e.cfg.MaxReasons {
		reasons = reasons[:e.cfg.MaxReasons]
	}

	texts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		texts = append(texts, r.text)
	}

	return &Recommendation{
		CourseID:        c.ID,
		CourseName:      c.Name,
		Instructor:      c.Instructor,
		Platform:        c.Platform,
		Rating:          c.Rating,
		Enrolled:        c.Enrolled,
		IsPaid:          c.IsPaid,
		CourseURL:       c.URL,
		MatchPercentage: percentage,
		MatchReasons:    texts,
	}
}

// overlappingSkills returns the course skills the candidate already has,
// in the course's declared order for determinism.
func overlappingSkills(profile *resume.Profile, c *course.Course) []string {
	have := make(map[string]struct{}, len(profile.Skills))
	for _, skill := range profile.Skills {
		have[skill] = struct{}{}
	}

	overlap := make([]string, 0)
	for _, skill := range c.Skills {
		if _, ok := have[skill]; ok {
			overlap = append(overlap, skill)
		}
	}
	return overlap
}

func skillReason(overlap []string, maxListed int) string {
	listed := overlap
	extra := 0
	if len(listed) > maxListed {
		extra = len(listed) - maxListed
		listed = listed[:maxListed]
	}

	text := fmt.Sprintf("Matches %d of your skills: %s", len(overlap), strings.Join(listed, ", "))
	if extra > 0 {
		text += fmt.Sprintf(" and %d more", extra)
	}
	return text
}

// domainAffinity scores how close the course's domain is to the
// profile's: the primary domain scores full marks, any other listed
// domain a configured secondary value, and unrelated domains fall back to
// the optional proximity table.
func (e *Engine) domainAffinity(profile *resume.Profile, c *course.Course) (float64, string) {
	if c.Domain == "" || len(profile.Domains) == 0 {
		return 0, ""
	}

	if c.Domain == profile.PrimaryDomain() {
		return 1.0, fmt.Sprintf("Aligned with your primary domain: %s", c.Domain)
	}

	if profile.HasDomain(c.Domain) {
		return e.cfg.SecondaryDomainScore, fmt.Sprintf("Related to your domain: %s", c.Domain)
	}

	best := 0.0
	for _, domain := range profile.Domains {
		if proximity, ok := e.cfg.DomainProximity[domain][c.Domain]; ok && proximity > best {
			best = proximity
		}
	}
	if best > 0 {
		return best, fmt.Sprintf("Close to your domain: %s", c.Domain)
	}

	return 0, ""
}

func levelFit(candidate resume.Level, target resume.Level) (float64, string) {
	if target == resume.LevelUnknown || candidate == resume.LevelUnknown {
		return 0, ""
	}

	if candidate == target {
		return 1.0, fmt.Sprintf("Suited to your experience level: %s", candidate)
	}

	if candidate.Adjacent(target) {
		return 0.5, fmt.Sprintf("Near your experience level: %s course", target)
	}

	return 0, ""
}
