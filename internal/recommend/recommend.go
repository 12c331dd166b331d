// Package recommend scores and ranks the course catalog against a
// candidate profile.
package recommend

import (
	"github.com/mooclabs/coursematch/internal/course"
)

// Recommendation is one ranked result. Display fields are copied from the
// matched course at scoring time, so later catalog changes cannot alter a
// returned recommendation.
type Recommendation struct {
	CourseID        string      `json:"course_id"`
	CourseName      string      `json:"course_name"`
	Instructor      string      `json:"instructor"`
	Platform        string      `json:"platform"`
	Rating          float64     `json:"rating"`
	Enrolled        int         `json:"enrolled"`
	IsPaid          course.Paid `json:"is_paid"`
	CourseURL       string      `json:"course_url"`
	MatchPercentage int         `json:"match_percentage"`
	MatchReasons    []string    `json:"match_reasons"`
}

// Config tunes the scoring heuristics. Zero values fall back to the
// defaults, keeping the weights configurable without code changes.
type Config struct {
	// SkillWeight scales the skill-overlap sub-score: the fraction of the
	// course's skills the candidate already has.
	SkillWeight float64 `mapstructure:"skill-weight"`
	// DomainWeight scales the domain-affinity sub-score.
	DomainWeight float64 `mapstructure:"domain-weight"`
	// LevelWeight scales the experience-level fit sub-score.
	LevelWeight float64 `mapstructure:"level-weight"`
	// SecondaryDomainScore is the domain sub-score for a course in one of
	// the profile's non-primary domains.
	SecondaryDomainScore float64 `mapstructure:"secondary-domain-score"`
	// MinimumMatchScore excludes courses scoring below it from results
	// entirely.
	MinimumMatchScore int `mapstructure:"minimum-match-score"`
	// TopK is the default result count when the caller does not override it.
	TopK int `mapstructure:"top-k"`
	// DomainProximity optionally maps profile domain -> course domain ->
	// decayed affinity in [0,1] for related-but-different domains.
	DomainProximity map[string]map[string]float64 `mapstructure:"domain-proximity"`
	// MaxReasons caps the number of match reasons per recommendation.
	MaxReasons int `mapstructure:"max-reasons"`
	// MaxReasonSkills caps how many overlapping skills a skill reason lists.
	MaxReasonSkills int `mapstructure:"max-reason-skills"`
}

const (
	defaultSkillWeight          = 0.6
	defaultDomainWeight         = 0.25
	defaultLevelWeight          = 0.15
	defaultSecondaryDomainScore = 0.7
	defaultMinimumMatchScore    = 1
	defaultTopK                 = 10
	defaultMaxReasons           = 3
	defaultMaxReasonSkills      = 4
)

func (c Config) withDefaults() Config {
	if c.SkillWeight <= 0 {
		c.SkillWeight = defaultSkillWeight
	}
	if c.DomainWeight <= 0 {
		c.DomainWeight = defaultDomainWeight
	}
	if c.LevelWeight <= 0 {
		c.LevelWeight = defaultLevelWeight
	}
	if c.SecondaryDomainScore <= 0 {
		c.SecondaryDomainScore = defaultSecondaryDomainScore
	}
	if c.MinimumMatchScore <= 0 {
		c.MinimumMatchScore = defaultMinimumMatchScore
	}
	if c.TopK <= 0 {
		c.TopK = defaultTopK
	}
	if c.MaxReasons <= 0 {
		c.MaxReasons = defaultMaxReasons
	}
	if c.MaxReasonSkills <= 0 {
		c.MaxReasonSkills = defaultMaxReasonSkills
	}
	return c
}
