package recommend

import (
	"reflect"
	"testing"

	"github.com/mooclabs/coursematch/internal/course"
	"github.com/mooclabs/coursematch/internal/resume"
)

func dataProfile() *resume.Profile {
	return &resume.Profile{
		Skills:          []string{"python", "sql"},
		SkillCount:      2,
		ExperienceLevel: resume.LevelMid,
		Domains:         []string{"data-science"},
	}
}

func TestRecommendScoringAndReasons(t *testing.T) {
	t.Parallel()

	catalog := course.NewCatalog([]*course.Course{
		{
			ID:     "ds-201",
			Name:   "Data Science with Python",
			Skills: []string{"python", "pandas", "sql"},
			Domain: "data-science",
			Level:  resume.LevelMid,
		},
	})

	results := NewEngine(Config{}, nil).Recommend(dataProfile(), catalog, 10)
	if len(results) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(results))
	}

	rec := results[0]
	// 0.6 * 2/3 + 0.25 * 1.0 + 0.15 * 1.0 = 0.8
	if rec.MatchPercentage != 80 {
		t.Fatalf("expected 80%%, got %d%%", rec.MatchPercentage)
	}

	want := []string{
		"Matches 2 of your skills: python, sql",
		"Aligned with your primary domain: data-science",
		"Suited to your experience level: mid",
	}
	if !reflect.DeepEqual(rec.MatchReasons, want) {
		t.Fatalf("unexpected reasons:\n got %q\nwant %q", rec.MatchReasons, want)
	}
}

func TestRecommendTieBreakChain(t *testing.T) {
	t.Parallel()

	// All four score identically, so ordering falls through the whole
	// rating -> enrollment -> ID chain.
	same := func(id string, rating float64, enrolled int) *course.Course {
		return &course.Course{
			ID:       id,
			Skills:   []string{"python", "sql"},
			Domain:   "data-science",
			Level:    resume.LevelMid,
			Rating:   rating,
			Enrolled: enrolled,
		}
	}
	catalog := course.NewCatalog([]*course.Course{
		same("d", 4.0, 100),
		same("c", 4.0, 100),
		same("b", 4.0, 500),
		same("a", 4.5, 100),
	})

	results := NewEngine(Config{}, nil).Recommend(dataProfile(), catalog, 10)

	got := make([]string, 0, len(results))
	for _, rec := range results {
		got = append(got, rec.CourseID)
	}
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order: got %v, want %v", got, want)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	t.Parallel()

	catalog := course.NewCatalog([]*course.Course{
		{ID: "a", Skills: []string{"python"}, Domain: "data-science", Level: resume.LevelMid},
		{ID: "b", Skills: []string{"sql", "python"}, Domain: "programming", Level: resume.LevelEntry},
		{ID: "c", Skills: []string{"react"}, Domain: "web-development", Level: resume.LevelSenior},
	})
	engine := NewEngine(Config{}, nil)

	first := engine.Recommend(dataProfile(), catalog, 10)
	second := engine.Recommend(dataProfile(), catalog, 10)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results")
	}
}

func TestRecommendBoundsAndLimits(t *testing.T) {
	t.Parallel()

	courses := make([]*course.Course, 0, 20)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		courses = append(courses, &course.Course{
			ID:     id,
			Skills: []string{"python", "sql"},
			Domain: "data-science",
			Level:  resume.LevelMid,
		})
	}
	catalog := course.NewCatalog(courses)
	engine := NewEngine(Config{}, nil)
	profile := dataProfile()

	if got := engine.Recommend(profile, catalog, 3); len(got) != 3 {
		t.Fatalf("expected topK to bound results, got %d", len(got))
	}
	if got := engine.Recommend(profile, catalog, 0); got != nil {
		t.Fatalf("expected no results for k=0")
	}
	if got := engine.Recommend(nil, catalog, 3); got != nil {
		t.Fatalf("expected no results for a nil profile")
	}
	if got := engine.Recommend(profile, course.NewCatalog(nil), 3); len(got) != 0 {
		t.Fatalf("expected no results for an empty catalog, got %d", len(got))
	}

	for _, rec := range engine.Recommend(profile, catalog, 10) {
		if rec.MatchPercentage < 0 || rec.MatchPercentage > 100 {
			t.Fatalf("score out of range for %s: %d", rec.CourseID, rec.MatchPercentage)
		}
	}
}

func TestRecommendFullMatchScoresHundred(t *testing.T) {
	t.Parallel()

	catalog := course.NewCatalog([]*course.Course{{
		ID:     "exact",
		Skills: []string{"python", "sql"},
		Domain: "data-science",
		Level:  resume.LevelMid,
	}})

	results := NewEngine(Config{}, nil).Recommend(dataProfile(), catalog, 1)
	if len(results) != 1 || results[0].MatchPercentage != 100 {
		t.Fatalf("expected a perfect match to score 100, got %+v", results)
	}
}

func TestRecommendExcludesZeroScores(t *testing.T) {
	t.Parallel()

	catalog := course.NewCatalog([]*course.Course{
		{ID: "skill-less", Domain: "cybersecurity", Level: resume.LevelUnknown},
		{ID: "unrelated", Skills: []string{"kotlin"}, Domain: "mobile-development", Level: resume.LevelUnknown},
	})

	if got := NewEngine(Config{}, nil).Recommend(dataProfile(), catalog, 10); len(got) != 0 {
		t.Fatalf("expected courses below the minimum score to be excluded, got %d", len(got))
	}
}

func TestRecommendProfileWithoutDomains(t *testing.T) {
	t.Parallel()

	profile := &resume.Profile{
		Skills:          []string{"python"},
		SkillCount:      1,
		ExperienceLevel: resume.LevelUnknown,
	}
	catalog := course.NewCatalog([]*course.Course{{
		ID:     "py",
		Skills: []string{"python"},
		Domain: "programming",
		Level:  resume.LevelEntry,
	}})

	results := NewEngine(Config{}, nil).Recommend(profile, catalog, 1)
	if len(results) != 1 {
		t.Fatalf("expected skill overlap alone to produce a result")
	}
	// Only the skill sub-score contributes: 0.6 * 1.0.
	if results[0].MatchPercentage != 60 {
		t.Fatalf("expected 60%%, got %d%%", results[0].MatchPercentage)
	}
	if len(results[0].MatchReasons) != 1 {
		t.Fatalf("expected a single reason, got %q", results[0].MatchReasons)
	}
}

func TestRecommendSecondaryAndProximateDomains(t *testing.T) {
	t.Parallel()

	profile := dataProfile()
	profile.Domains = []string{"data-science", "machine-learning"}

	cfg := Config{
		DomainProximity: map[string]map[string]float64{
			"machine-learning": {"cloud-computing": 0.4},
		},
	}
	catalog := course.NewCatalog([]*course.Course{
		{ID: "ml", Skills: []string{"python"}, Domain: "machine-learning", Level: resume.LevelMid},
		{ID: "cloud", Skills: []string{"python"}, Domain: "cloud-computing", Level: resume.LevelMid},
	})

	results := NewEngine(cfg, nil).Recommend(profile, catalog, 10)
	if len(results) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(results))
	}

	reasons := map[string][]string{}
	for _, rec := range results {
		reasons[rec.CourseID] = rec.MatchReasons
	}
	if !containsReason(reasons["ml"], "Related to your domain: machine-learning") {
		t.Fatalf("expected a secondary-domain reason for ml, got %q", reasons["ml"])
	}
	if !containsReason(reasons["cloud"], "Close to your domain: cloud-computing") {
		t.Fatalf("expected a proximity reason for cloud, got %q", reasons["cloud"])
	}
}

func TestRecommendAdjacentLevel(t *testing.T) {
	t.Parallel()

	catalog := course.NewCatalog([]*course.Course{{
		ID:     "adv",
		Skills: []string{"python"},
		Domain: "data-science",
		Level:  resume.LevelSenior,
	}})

	results := NewEngine(Config{}, nil).Recommend(dataProfile(), catalog, 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(results))
	}
	if !containsReason(results[0].MatchReasons, "Near your experience level: senior course") {
		t.Fatalf("expected an adjacent-level reason, got %q", results[0].MatchReasons)
	}
}

func TestRecommendSkillReasonCapped(t *testing.T) {
	t.Parallel()

	skills := []string{"python", "sql", "pandas", "numpy", "spark", "airflow"}
	profile := &resume.Profile{
		Skills:          skills,
		SkillCount:      len(skills),
		ExperienceLevel: resume.LevelMid,
		Domains:         []string{"data-science"},
	}
	catalog := course.NewCatalog([]*course.Course{{
		ID:     "big",
		Skills: skills,
		Domain: "data-science",
		Level:  resume.LevelMid,
	}})

	results := NewEngine(Config{}, nil).Recommend(profile, catalog, 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(results))
	}
	want := "Matches 6 of your skills: python, sql, pandas, numpy and 2 more"
	if results[0].MatchReasons[0] != want {
		t.Fatalf("unexpected skill reason:\n got %q\nwant %q", results[0].MatchReasons[0], want)
	}
}

func TestRecommendDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	profile := dataProfile()
	wantSkills := append([]string(nil), profile.Skills...)

	courses := []*course.Course{{
		ID:     "a",
		Skills: []string{"sql", "python"},
		Domain: "data-science",
		Level:  resume.LevelMid,
	}}
	catalog := course.NewCatalog(courses)

	NewEngine(Config{}, nil).Recommend(profile, catalog, 1)

	if !reflect.DeepEqual(profile.Skills, wantSkills) {
		t.Fatalf("profile skills mutated: %v", profile.Skills)
	}
	if !reflect.DeepEqual(courses[0].Skills, []string{"sql", "python"}) {
		t.Fatalf("course skills mutated: %v", courses[0].Skills)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
