package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/mooclabs/coursematch/internal/document"
)

type stubClassifier struct {
	profile *Profile
	err     error
	calls   int
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (*Profile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func newStubAnalyzer(primary, fallback ProfileClassifier, text string, extractErr error) *Analyzer {
	analyzer := NewAnalyzer(primary, fallback, nil)
	analyzer.extract = func(string) (string, error) {
		return text, extractErr
	}
	return analyzer
}

func TestAnalyzePropagatesUnreadable(t *testing.T) {
	t.Parallel()

	classifier := &stubClassifier{}
	analyzer := newStubAnalyzer(classifier, nil, "", document.ErrUnreadable)

	_, err := analyzer.Analyze(context.Background(), "broken.pdf")
	if !errors.Is(err, document.ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
	if classifier.calls != 0 {
		t.Fatalf("classifier must not run on unreadable documents")
	}
}

func TestAnalyzeReturnsProfile(t *testing.T) {
	t.Parallel()

	expected := &Profile{Skills: []string{"python"}, SkillCount: 1, ExperienceLevel: LevelMid}
	analyzer := newStubAnalyzer(&stubClassifier{profile: expected}, nil, "some resume text", nil)

	profile, err := analyzer.Analyze(context.Background(), "resume.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != expected {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAnalyzeFallsBackOnPrimaryFailure(t *testing.T) {
	t.Parallel()

	expected := &Profile{Skills: []string{"sql"}, SkillCount: 1, ExperienceLevel: LevelEntry}
	primary := &stubClassifier{err: errors.New("model unavailable")}
	fallback := &stubClassifier{profile: expected}

	analyzer := newStubAnalyzer(primary, fallback, "some resume text", nil)

	profile, err := analyzer.Analyze(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != expected {
		t.Fatalf("expected fallback profile, got %+v", profile)
	}
	if fallback.calls != 1 {
		t.Fatalf("expected fallback to be invoked once, got %d", fallback.calls)
	}
}

func TestAnalyzeDoesNotFallBackOnAnalysisFailure(t *testing.T) {
	t.Parallel()

	primary := &stubClassifier{err: ErrAnalysisFailed}
	fallback := &stubClassifier{profile: &Profile{}}

	analyzer := newStubAnalyzer(primary, fallback, "some resume text", nil)

	_, err := analyzer.Analyze(context.Background(), "resume.pdf")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
	if fallback.calls != 0 {
		t.Fatalf("analysis failures are final; fallback must not run")
	}
}
