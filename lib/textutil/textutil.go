package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases the name and collapses all runs of whitespace into
// a single space.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.TrimSpace(name)
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}

// NormalizeSet normalizes, deduplicates and drops empty entries while
// keeping the first occurrence's original spelling and the input order.
func NormalizeSet(values []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, v := range values {
		trimmed := whitespaceRegex.ReplaceAllString(strings.TrimSpace(v), " ")
		if trimmed == "" {
			continue
		}
		key := NormalizeName(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
