package validation

import (
	"strings"
)

// NormalizeSearchTerm trims a search term and collapses internal whitespace
func NormalizeSearchTerm(term string) string {
	return strings.Join(strings.Fields(term), " ")
}

// EscapeLike escapes the LIKE wildcards in s so that it matches literally.
// The escape character is a backslash.
func EscapeLike(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
