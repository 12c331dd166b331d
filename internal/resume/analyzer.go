package resume

import (
	"context"
	"errors"

	"github.com/mooclabs/coursematch/internal/document"
	"go.uber.org/zap"
)

// ProfileClassifier turns extracted resume text into a profile. The
// heuristic Classifier is the standard implementation; an AI-backed one
// can be plugged in instead.
type ProfileClassifier interface {
	Classify(ctx context.Context, text string) (*Profile, error)
}

// Analyzer orchestrates text extraction and classification. It holds no
// request-scoped state, so a single instance serves concurrent calls. The
// input file is only read; its lifecycle belongs to the caller and no
// reference to the path is kept after Analyze returns.
type Analyzer struct {
	classifier ProfileClassifier
	fallback   ProfileClassifier
	extract    func(path string) (string, error)
	logger     *zap.Logger
}

// NewAnalyzer builds an analyzer. fallback may be nil; when set it is
// tried if the primary classifier fails for a reason other than the
// document itself being unusable.
func NewAnalyzer(classifier, fallback ProfileClassifier, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		classifier: classifier,
		fallback:   fallback,
		extract:    document.Extract,
		logger:     logger,
	}
}

// Analyze reads the document at path and returns the candidate profile.
// It fails with document.ErrUnreadable when the file cannot be parsed and
// with ErrAnalysisFailed when the document parsed but carried no usable
// signal.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*Profile, error) {
	text, err := a.extract(path)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("document text extracted",
		zap.Int("text_length", len(text)),
	)

	profile, err := a.classifier.Classify(ctx, text)
	if err != nil && a.fallback != nil && !errors.Is(err, ErrAnalysisFailed) {
		a.logger.Warn("primary classifier failed, falling back",
			zap.Error(err),
		)
		profile, err = a.fallback.Classify(ctx, text)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Info("resume analyzed",
		zap.Int("skill_count", profile.SkillCount),
		zap.String("experience_level", string(profile.ExperienceLevel)),
		zap.Strings("domains", profile.Domains),
	)

	return profile, nil
}
