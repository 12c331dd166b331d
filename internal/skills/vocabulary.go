package skills

import (
	"sort"
	"strings"
	"unicode"
)

// Entry describes one known skill: its canonical tag, the alias spellings
// that should resolve to it, and the domains it belongs to.
type Entry struct {
	Canonical string
	Aliases   []string
	Domains   []string
}

// Hit is a single detected skill with its occurrence count.
type Hit struct {
	Canonical string
	Count     int
	Domains   []string
}

// Vocabulary is an immutable reference table of known skills. It is built
// once at startup and is safe for concurrent readers.
type Vocabulary struct {
	entries []Entry
	// aliases sorted longest-first so multi-word phrases win over the
	// single words they contain.
	aliases []aliasRef
}

type aliasRef struct {
	text  string
	entry int
}

// New builds a vocabulary from the provided entries. Aliases are
// normalized; the canonical tag itself always counts as an alias.
func New(entries []Entry) *Vocabulary {
	v := &Vocabulary{entries: make([]Entry, 0, len(entries))}

	for _, entry := range entries {
		entry.Canonical = Normalize(entry.Canonical)
		if entry.Canonical == "" {
			continue
		}

		idx := len(v.entries)
		v.entries = append(v.entries, entry)

		seen := map[string]struct{}{}
		for _, alias := range append([]string{entry.Canonical}, entry.Aliases...) {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" {
				continue
			}
			if _, ok := seen[alias]; ok {
				continue
			}
			seen[alias] = struct{}{}
			v.aliases = append(v.aliases, aliasRef{text: alias, entry: idx})
		}
	}

	sort.Slice(v.aliases, func(i, j int) bool {
		if len(v.aliases[i].text) != len(v.aliases[j].text) {
			return len(v.aliases[i].text) > len(v.aliases[j].text)
		}
		return v.aliases[i].text < v.aliases[j].text
	})

	return v
}

// Len returns the number of entries in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Scan finds all vocabulary skills mentioned in the text using
// case-insensitive, word-boundary-aware matching. Longer aliases are
// matched first and their spans masked, so a phrase like "machine learning"
// is reported once rather than as its component words. Hits are returned
// ordered by descending occurrence count, ties broken alphabetically.
func (v *Vocabulary) Scan(text string) []Hit {
	lowered := []byte(strings.ToLower(text))
	counts := make(map[int]int)

	for _, alias := range v.aliases {
		from := 0
		for {
			idx := strings.Index(string(lowered[from:]), alias.text)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(alias.text)

			if !isBoundary(lowered, start-1) || !isBoundary(lowered, end) {
				from = start + 1
				continue
			}

			counts[alias.entry]++
			// Mask the span so contained shorter aliases do not rematch.
			for i := start; i < end; i++ {
				lowered[i] = ' '
			}
			from = end
		}
	}

	hits := make([]Hit, 0, len(counts))
	for idx, count := range counts {
		entry := v.entries[idx]
		hits = append(hits, Hit{
			Canonical: entry.Canonical,
			Count:     count,
			Domains:   entry.Domains,
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Count != hits[j].Count {
			return hits[i].Count > hits[j].Count
		}
		return hits[i].Canonical < hits[j].Canonical
	})

	return hits
}

// isBoundary reports whether the byte at idx separates tokens. Letters,
// digits and the symbols that appear inside skill names ("c++", "c#")
// continue a token; anything else, or the text edge, is a boundary.
func isBoundary(text []byte, idx int) bool {
	if idx < 0 || idx >= len(text) {
		return true
	}

	r := rune(text[idx])
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}

	switch r {
	case '+', '#':
		return false
	}

	return true
}
