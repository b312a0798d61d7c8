package translation

import (
	"strings"
	"unicode"
)

// SyllableSeparator joins the words of a normalized label or query
const SyllableSeparator = '-'

// WildcardSyllable marks a query as matching an open set of concepts
const WildcardSyllable = "?"

// Normalize lower-cases s and collapses runs of whitespace, '_' and '-'
// into a single '-', trimming separators from both ends.
// "Diamond  Sword" and "diamond_sword" both normalize to "diamond-sword".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSeparator := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '_' || r == SyllableSeparator {
			pendingSeparator = b.Len() > 0
			continue
		}
		if pendingSeparator {
			b.WriteRune(SyllableSeparator)
			pendingSeparator = false
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Syllables splits a normalized string into its '-' separated parts
func Syllables(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, string(SyllableSeparator))
}
