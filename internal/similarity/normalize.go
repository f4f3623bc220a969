package similarity

import (
	"strings"
	"unicode"
)

// Normalize produces the canonical comparison form of an identifier:
// lowercased with every underscore and whitespace character removed. Other
// punctuation is preserved. Empty input yields "" and the function is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
