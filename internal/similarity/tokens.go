package similarity

import (
	"strings"
	"unicode"
)

// SplitIdentifier splits an identifier into its constituent lowercase word
// tokens. A new token starts at every uppercase letter, so camelCase and
// PascalCase humps become separate words and each capital in an acronym run
// becomes its own one-letter token unless trailing lowercase letters extend
// it ("XMLHttpRequest" -> ["x" "m" "l" "http" "request"]). Underscores,
// whitespace, and digits act purely as separators and never appear in the
// output; an input with no letters yields an empty, non-nil slice.
func SplitIdentifier(s string) []string {
	tokens := []string{}
	if s == "" {
		return tokens
	}

	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '_' || unicode.IsSpace(r) || unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			flush()
			word.WriteRune(unicode.ToLower(r))
		default:
			word.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// TokenSet splits an identifier and returns the unique tokens as a set.
func TokenSet(s string) map[string]struct{} {
	tokens := SplitIdentifier(s)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
