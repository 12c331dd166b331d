package resume

import "strings"

// degreeKeywords are the lowercased, punctuation-stripped tokens that
// start an education entry.
var degreeKeywords = map[string]struct{}{
	"bachelor": {}, "bachelors": {},
	"master": {}, "masters": {},
	"phd": {}, "doctorate": {},
	"bs": {}, "bsc": {}, "ms": {}, "msc": {},
	"ba": {}, "ma": {}, "btech": {}, "mtech": {},
	"beng": {}, "meng": {}, "mba": {}, "bba": {},
}

// connectors may join a degree to its field or institution without
// carrying capitalization.
var educationConnectors = map[string]struct{}{
	"of": {}, "in": {}, "and": {}, "the": {}, "from": {}, "at": {},
}

const (
	maxEducationEntries    = 5
	maxEducationEntryWords = 9
)

// educationRule extracts degree and institution phrases. It is
// best-effort: missed entries are acceptable, fabricated ones are not, so
// only phrases anchored on an explicit degree keyword are taken.
type educationRule struct{}

func (r *educationRule) Name() string { return "education" }

func (r *educationRule) Apply(text string, p *Profile) error {
	words := strings.Fields(text)
	seen := make(map[string]struct{})

	for i := 0; i < len(words) && len(p.Education) < maxEducationEntries; i++ {
		if _, ok := degreeKeywords[cleanToken(words[i])]; !ok {
			continue
		}

		entry := captureEducationEntry(words[i:])
		key := strings.ToLower(entry)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		p.Education = append(p.Education, entry)

		// Skip past the captured phrase so "Bachelor of Science" does not
		// also anchor on a keyword inside itself.
		i += len(strings.Fields(entry)) - 1
	}

	return nil
}

// captureEducationEntry takes the degree keyword and the following
// connector or capitalized words, which approximate the field of study
// and institution.
func captureEducationEntry(words []string) string {
	captured := []string{words[0]}

	for i := 1; i < len(words) && len(captured) < maxEducationEntryWords && !sentenceEnd(words[i-1]); i++ {
		word := words[i]
		_, connector := educationConnectors[strings.ToLower(cleanToken(word))]
		if !connector && !startsUpper(word) {
			break
		}
		captured = append(captured, word)
	}

	// Trailing connectors carry no information.
	for len(captured) > 1 {
		last := strings.ToLower(cleanToken(captured[len(captured)-1]))
		if _, connector := educationConnectors[last]; !connector {
			break
		}
		captured = captured[:len(captured)-1]
	}

	return strings.TrimRight(strings.Join(captured, " "), ".,;:")
}

// sentenceEnd reports whether the word closes a sentence or clause.
// Dotted abbreviations like "B.S." do not count.
func sentenceEnd(word string) bool {
	trimmed := strings.TrimRight(word, ".,;:")
	if trimmed == word {
		return false
	}
	return !strings.Contains(trimmed, ".")
}

// cleanToken lowercases a word and strips the punctuation that degree
// abbreviations carry, so "B.S.," becomes "bs".
func cleanToken(word string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func startsUpper(word string) bool {
	for _, r := range word {
		return r >= 'A' && r <= 'Z'
	}
	return false
}
