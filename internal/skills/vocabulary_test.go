package skills

import "testing"

func scanTags(t *testing.T, vocab *Vocabulary, text string) map[string]int {
	t.Helper()

	tags := make(map[string]int)
	for _, hit := range vocab.Scan(text) {
		tags[hit.Canonical] = hit.Count
	}
	return tags
}

func TestScanPhrasePriority(t *testing.T) {
	t.Parallel()

	vocab := New([]Entry{
		{Canonical: "machine learning", Domains: []string{DomainMachineLearning}},
		{Canonical: "machine", Domains: []string{DomainProgramming}},
		{Canonical: "learning", Domains: []string{DomainProgramming}},
	})

	tags := scanTags(t, vocab, "Built a machine learning pipeline")

	if tags["machine learning"] != 1 {
		t.Fatalf("expected the phrase to match once, got %v", tags)
	}
	if _, ok := tags["machine"]; ok {
		t.Fatalf("component word matched inside the phrase: %v", tags)
	}
	if _, ok := tags["learning"]; ok {
		t.Fatalf("component word matched inside the phrase: %v", tags)
	}
}

func TestScanWordBoundaries(t *testing.T) {
	t.Parallel()

	vocab := New([]Entry{
		{Canonical: "java", Domains: []string{DomainProgramming}},
		{Canonical: "javascript", Domains: []string{DomainWebDevelopment}},
	})

	tags := scanTags(t, vocab, "Wrote JavaScript for the frontend")

	if tags["javascript"] != 1 {
		t.Fatalf("expected javascript to match, got %v", tags)
	}
	if _, ok := tags["java"]; ok {
		t.Fatalf("java must not match inside javascript: %v", tags)
	}
}

func TestScanIsCaseInsensitiveAndCounts(t *testing.T) {
	t.Parallel()

	vocab := New([]Entry{
		{Canonical: "python", Domains: []string{DomainProgramming}},
		{Canonical: "sql", Domains: []string{DomainDatabases}},
	})

	hits := vocab.Scan("Python, PYTHON and python. Also SQL.")

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	// Ordered by count descending.
	if hits[0].Canonical != "python" || hits[0].Count != 3 {
		t.Fatalf("expected python x3 first, got %+v", hits[0])
	}
	if hits[1].Canonical != "sql" || hits[1].Count != 1 {
		t.Fatalf("expected sql x1 second, got %+v", hits[1])
	}
}

func TestScanAliasResolvesToCanonical(t *testing.T) {
	t.Parallel()

	vocab := New([]Entry{
		{Canonical: "nodejs", Aliases: []string{"node.js", "node"}, Domains: []string{DomainWebDevelopment}},
	})

	tags := scanTags(t, vocab, "Experience with Node.js services")
	if tags["nodejs"] == 0 {
		t.Fatalf("expected alias to resolve to canonical tag, got %v", tags)
	}
}

func TestScanSymbolNames(t *testing.T) {
	t.Parallel()

	vocab := New([]Entry{
		{Canonical: "c++", Domains: []string{DomainProgramming}},
	})

	tags := scanTags(t, vocab, "Ten years of C++ development")
	if tags["c++"] != 1 {
		t.Fatalf("expected c++ to match, got %v", tags)
	}

	if got := scanTags(t, vocab, "Using c++11 features"); got["c++"] != 0 {
		t.Fatalf("c++ must not match inside c++11, got %v", got)
	}
}

func TestDefaultVocabularyIsNonEmpty(t *testing.T) {
	t.Parallel()

	if Default().Len() < 50 {
		t.Fatalf("default vocabulary unexpectedly small: %d entries", Default().Len())
	}
}
