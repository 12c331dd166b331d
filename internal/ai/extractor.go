// Package ai defines the pluggable model-backed alternative to the
// heuristic resume classifier.
package ai

import (
	"context"
	"fmt"

	"github.com/mooclabs/coursematch/internal/resume"
	"github.com/mooclabs/coursematch/internal/skills"
)

// ProfileExtraction is the raw structured output of a model-backed
// extractor, before canonicalization.
type ProfileExtraction struct {
	Skills          []string
	ExperienceLevel string
	Domains         []string
	Education       []string
	Raw             string
}

// Extractor produces a profile extraction from resume text.
type Extractor interface {
	ExtractProfile(ctx context.Context, text string) (*ProfileExtraction, error)
}

// Classifier adapts an Extractor into the resume.ProfileClassifier seam,
// applying the same canonicalization and failure semantics as the
// heuristic classifier.
type Classifier struct {
	extractor Extractor
}

// NewClassifier wraps the extractor.
func NewClassifier(extractor Extractor) *Classifier {
	return &Classifier{extractor: extractor}
}

// Classify runs the extractor and canonicalizes its output. A result
// without any usable skill is an analysis failure, matching the heuristic
// classifier's contract.
func (c *Classifier) Classify(ctx context.Context, text string) (*resume.Profile, error) {
	extraction, err := c.extractor.ExtractProfile(ctx, text)
	if err != nil {
		return nil, err
	}

	profile := &resume.Profile{
		Skills:          skills.NormalizeAll(extraction.Skills),
		ExperienceLevel: resume.ParseLevel(extraction.ExperienceLevel),
		Domains:         skills.NormalizeAll(extraction.Domains),
		Education:       extraction.Education,
	}
	profile.SkillCount = len(profile.Skills)

	if profile.SkillCount == 0 {
		return nil, fmt.Errorf("%w: extractor returned no skills", resume.ErrAnalysisFailed)
	}

	return profile, nil
}
