package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/mooclabs/coursematch/internal/skills"
)

func newTestClassifier(cfg ClassifierConfig) *Classifier {
	vocab := skills.Default()
	return NewClassifier(cfg, DefaultRules(vocab, cfg), nil)
}

func TestClassifyFullScenario(t *testing.T) {
	t.Parallel()

	text := "5 years of Python and SQL experience, Bachelor of Science in Computer Science"
	profile, err := newTestClassifier(ClassifierConfig{}).Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.ExperienceLevel != LevelSenior {
		t.Fatalf("expected senior, got %s", profile.ExperienceLevel)
	}

	hasSkill := func(tag string) bool {
		for _, s := range profile.Skills {
			if s == tag {
				return true
			}
		}
		return false
	}
	if !hasSkill("python") || !hasSkill("sql") {
		t.Fatalf("expected python and sql in skills, got %v", profile.Skills)
	}

	if profile.SkillCount != len(profile.Skills) {
		t.Fatalf("skill_count %d does not match skills %v", profile.SkillCount, profile.Skills)
	}

	foundEducation := false
	for _, entry := range profile.Education {
		if entry == "Bachelor of Science in Computer Science" {
			foundEducation = true
		}
	}
	if !foundEducation {
		t.Fatalf("expected a Computer Science education entry, got %v", profile.Education)
	}

	if len(profile.Domains) == 0 {
		t.Fatalf("expected inferred domains")
	}
}

func TestClassifyShortTextFails(t *testing.T) {
	t.Parallel()

	_, err := newTestClassifier(ClassifierConfig{}).Classify(context.Background(), "too short")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestClassifyNoSkillsFails(t *testing.T) {
	t.Parallel()

	text := "An enthusiastic person who enjoys outdoor walks, cooking dinner for friends and reading long novels on quiet weekend mornings."
	_, err := newTestClassifier(ClassifierConfig{}).Classify(context.Background(), text)
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed for skill-less text, got %v", err)
	}
}

func TestClassifyDomainOrdering(t *testing.T) {
	t.Parallel()

	// pandas and numpy are data-science only; docker is devops/cloud.
	text := "Daily work with pandas, numpy and more pandas pipelines, occasionally deploying with docker."
	profile, err := newTestClassifier(ClassifierConfig{}).Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.PrimaryDomain() != skills.DomainDataScience {
		t.Fatalf("expected data-science as primary domain, got %v", profile.Domains)
	}
}

func TestClassifyTopDomainsCap(t *testing.T) {
	t.Parallel()

	cfg := ClassifierConfig{TopDomains: 2}
	text := "Worked with python, react, android, aws, docker, mysql and penetration testing projects."
	profile, err := newTestClassifier(cfg).Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(profile.Domains) > 2 {
		t.Fatalf("expected at most 2 domains, got %v", profile.Domains)
	}
}
