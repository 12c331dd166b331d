package skills

import "strings"

// Normalize converts a raw skill string into its canonical tag form:
// lowercased, trimmed, inner whitespace collapsed to single spaces and
// dots removed, so "Node.js" and "nodejs" map to the same tag.
// Normalizing an already-normalized tag returns it unchanged.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = strings.ReplaceAll(tag, ".", "")

	fields := strings.Fields(tag)
	return strings.Join(fields, " ")
}

// NormalizeAll normalizes and deduplicates a list of raw skill strings,
// preserving first-seen order and dropping entries that normalize to empty.
func NormalizeAll(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		normalized := Normalize(tag)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result
}
