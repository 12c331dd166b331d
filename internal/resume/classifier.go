package resume

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrAnalysisFailed marks a document that parsed fine but produced no
// usable signal: empty or near-empty text, or no recognizable skills. It
// is distinct from document.ErrUnreadable so callers can give different
// guidance.
var ErrAnalysisFailed = errors.New("resume analysis failed")

// Rule is a single independent classification step applied to the resume
// text. Rules populate their slice of the profile and must not depend on
// each other's output.
type Rule interface {
	Name() string
	Apply(text string, p *Profile) error
}

// ClassifierConfig holds the heuristic thresholds. Zero values fall back
// to the defaults.
type ClassifierConfig struct {
	// MinTextLength is the minimum normalized text length considered
	// analyzable.
	MinTextLength int `mapstructure:"min-text-length"`
	// TopDomains caps how many inferred domains a profile carries.
	TopDomains int `mapstructure:"top-domains"`
	// SeniorYears is the explicit year count from which a candidate is
	// classified senior.
	SeniorYears int `mapstructure:"senior-years"`
	// MidYears is the explicit year count from which a candidate is
	// classified mid-level.
	MidYears int `mapstructure:"mid-years"`
	// LongResumeWords is the word count above which a resume with no other
	// experience signal is assumed mid-level.
	LongResumeWords int `mapstructure:"long-resume-words"`
}

const (
	defaultMinTextLength   = 50
	defaultTopDomains      = 5
	defaultSeniorYears     = 5
	defaultMidYears        = 2
	defaultLongResumeWords = 700
)

func (c ClassifierConfig) withDefaults() ClassifierConfig {
	if c.MinTextLength <= 0 {
		c.MinTextLength = defaultMinTextLength
	}
	if c.TopDomains <= 0 {
		c.TopDomains = defaultTopDomains
	}
	if c.SeniorYears <= 0 {
		c.SeniorYears = defaultSeniorYears
	}
	if c.MidYears <= 0 {
		c.MidYears = defaultMidYears
	}
	if c.LongResumeWords <= 0 {
		c.LongResumeWords = defaultLongResumeWords
	}
	return c
}

// Classifier runs an ordered list of rules over resume text. The rule
// list and the vocabulary behind it are read-only, so one classifier is
// safe for concurrent use.
type Classifier struct {
	cfg    ClassifierConfig
	rules  []Rule
	logger *zap.Logger
}

// NewClassifier builds a classifier with the provided rules.
func NewClassifier(cfg ClassifierConfig, rules []Rule, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{cfg: cfg.withDefaults(), rules: rules, logger: logger}
}

// Classify runs every rule in order and returns the assembled profile.
// A profile without a single detected skill is a classification failure,
// not an empty-but-valid result. The context is unused: the heuristic
// rules are pure computation.
func (c *Classifier) Classify(_ context.Context, text string) (*Profile, error) {
	if len(text) < c.cfg.MinTextLength {
		return nil, fmt.Errorf("%w: document text too short (%d chars)", ErrAnalysisFailed, len(text))
	}

	profile := &Profile{ExperienceLevel: LevelUnknown}

	for _, rule := range c.rules {
		if err := rule.Apply(text, profile); err != nil {
			return nil, fmt.Errorf("%s: %w", rule.Name(), err)
		}

		c.logger.Debug("classification rule applied",
			zap.String("rule", rule.Name()),
			zap.Int("skills", len(profile.Skills)),
			zap.Int("domains", len(profile.Domains)),
		)
	}

	profile.SkillCount = len(profile.Skills)
	if profile.SkillCount == 0 {
		return nil, fmt.Errorf("%w: no recognizable skills found", ErrAnalysisFailed)
	}

	return profile, nil
}
