package similarity

import (
	"strings"
	"unicode/utf8"
)

// Bonus and penalty weights for the composite score. The values are part of
// the scoring contract: tests assert literal scores built from them.
const (
	exactBonus       = 0.3
	containmentBonus = 0.2
	tokenEqualBonus  = 0.2
	tokenPrefixBonus = 0.1
	multiTokenBonus  = 0.2
	lengthPenaltyPer = 0.01
)

// Score computes the composite relevance of candidate as a suggestion for
// unknown. The base is the Jaro-Winkler similarity of the normalized
// strings; on top of it:
//
//   - +0.3 when the normalized strings are equal (including "" == "")
//   - +0.2 when either normalized string contains the other
//   - +0.2 per equal token pair and +0.1 per prefix-related token pair
//     across the two raw token sets, plus a flat +0.2 once two or more
//     token pairs matched
//   - -0.01 per character the candidate is longer than the unknown
//
// Bonuses stack, so the result can exceed 1.0; it ranks candidates and is
// not a probability.
func Score(unknown, candidate string) float64 {
	nu := Normalize(unknown)
	nc := Normalize(candidate)

	score := JaroWinkler(nu, nc)

	if nu == nc {
		score += exactBonus
	}

	if strings.Contains(nu, nc) || strings.Contains(nc, nu) {
		score += containmentBonus
	}

	score += tokenOverlapBonus(unknown, candidate)

	if extra := utf8.RuneCountInString(candidate) - utf8.RuneCountInString(unknown); extra > 0 {
		score -= lengthPenaltyPer * float64(extra)
	}

	return score
}

// tokenOverlapBonus compares the token sets of the raw strings. Equal
// tokens score higher than tokens related only by prefix, and matching on
// two or more tokens earns a flat bonus once.
func tokenOverlapBonus(unknown, candidate string) float64 {
	unknownTokens := TokenSet(unknown)
	candidateTokens := TokenSet(candidate)
	if len(unknownTokens) == 0 || len(candidateTokens) == 0 {
		return 0.0
	}

	bonus := 0.0
	pairs := 0
	for tq := range unknownTokens {
		for tc := range candidateTokens {
			switch {
			case tq == tc:
				bonus += tokenEqualBonus
				pairs++
			case strings.HasPrefix(tc, tq) || strings.HasPrefix(tq, tc):
				bonus += tokenPrefixBonus
				pairs++
			}
		}
	}

	if pairs >= 2 {
		bonus += multiTokenBonus
	}

	return bonus
}
