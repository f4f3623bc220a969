package suggest

import (
	"sort"

	"github.com/standardbeagle/dym/internal/similarity"
)

// RankKeyed scores every valid candidate against the unknown name and
// returns up to MaxSuggestions matches sorted by descending score.
// Candidates with an empty name are discarded, as is any candidate whose
// name equals the unknown name exactly: the identifier the caller already
// tried is not a suggestion. An empty unknown name or an empty pool yields
// an empty, non-nil result.
func RankKeyed[T any](unknown string, candidates []Candidate[T]) []Match[T] {
	matches := []Match[T]{}
	if unknown == "" || len(candidates) == 0 {
		return matches
	}

	for _, c := range candidates {
		if c.Name == "" || c.Name == unknown {
			continue
		}
		matches = append(matches, Match[T]{
			Name:  c.Name,
			Value: c.Value,
			Score: similarity.Score(unknown, c.Name),
		})
	}

	sortMatches(matches)

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	return matches
}

// RankNames is the flat-name form of RankKeyed: plain candidate strings in,
// up to MaxSuggestions (name, score) pairs out, same filtering and ordering
// rules. Empty entries in the pool are skipped.
func RankNames(unknown string, names []string) []NameMatch {
	matches := []NameMatch{}
	if unknown == "" || len(names) == 0 {
		return matches
	}

	for _, name := range names {
		if name == "" || name == unknown {
			continue
		}
		matches = append(matches, NameMatch{
			Name:  name,
			Score: similarity.Score(unknown, name),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return lessName(matches[i].Name, matches[j].Name)
	})

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	return matches
}

func sortMatches[T any](matches []Match[T]) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return lessName(matches[i].Name, matches[j].Name)
	})
}

// lessName is the deterministic tiebreaker for equal scores: shorter names
// first, then lexical order.
func lessName(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
