package similarity

// winklerPrefixCap bounds the common-prefix length that contributes to the
// Jaro-Winkler boost.
const winklerPrefixCap = 4

// Jaro computes the Jaro similarity between a and b in [0,1]. Two empty
// strings are identical (1.0); exactly one empty string matches nothing
// (0.0). Characters match when they are equal and within the standard
// search window, and each half-transposition is a matched character that
// lines up against a different matched character in the other string.
// The function is symmetric: Jaro(a, b) == Jaro(b, a).
func Jaro(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ra := []rune(a)
	rb := []rune(b)

	window := maxInt(len(ra), len(rb))/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))

	// First pass: count matches, taking the first unused character of b
	// inside the window for each character of a.
	matches := 0
	for i := range ra {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > len(rb)-1 {
			hi = len(rb) - 1
		}

		for j := lo; j <= hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	// Second pass: walk the matched characters of both strings in order and
	// count positions where they disagree. Each out-of-order pair is counted
	// twice here, so the raw count is halved inside the final expression.
	halfTranspositions := 0
	k := 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if ra[i] != rb[k] {
			halfTranspositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(halfTranspositions) / 2.0

	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-t)/m) / 3.0
}

// JaroWinkler computes the Jaro-Winkler similarity between a and b: the
// Jaro score boosted toward 1.0 in proportion to the length of the shared
// prefix, capped at four characters. The boost applies unconditionally, so
// JaroWinkler(a, b) >= Jaro(a, b) always, with equality when the strings
// share no prefix.
func JaroWinkler(a, b string) float64 {
	j := Jaro(a, b)

	ra := []rune(a)
	rb := []rune(b)

	limit := minInt(winklerPrefixCap, minInt(len(ra), len(rb)))
	prefix := 0
	for prefix < limit && ra[prefix] == rb[prefix] {
		prefix++
	}

	return j + float64(prefix)*0.1*(1.0-j)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
