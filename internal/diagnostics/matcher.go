package diagnostics

import (
	"fmt"
	"math"

	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/dym/internal/similarity"
	"github.com/standardbeagle/dym/internal/suggest"
)

// Matcher applies caller-side policy on top of the suggest ranker:
// per-category minimum scores and an optional cheaper pre-filter metric for
// oversized candidate pools.
type Matcher struct {
	minScore          float64
	categoryMinScores map[Category]float64
	algorithm         string // "composite", "jaro-winkler", "levenshtein", "cosine"
}

// NewMatcher creates a matcher with the given default cutoff and algorithm.
// Out-of-range cutoffs fall back to DefaultMinScore; an empty algorithm
// selects the composite scorer.
func NewMatcher(minScore float64, algorithm string) *Matcher {
	if minScore < 0 || minScore > 2 {
		minScore = DefaultMinScore
	}
	if algorithm == "" {
		algorithm = "composite"
	}

	overrides := make(map[Category]float64, len(DefaultCategoryMinScores))
	for cat, score := range DefaultCategoryMinScores {
		overrides[cat] = score
	}

	return &Matcher{
		minScore:          minScore,
		categoryMinScores: overrides,
		algorithm:         algorithm,
	}
}

// SetCategoryMinScore overrides the cutoff for one category.
func (m *Matcher) SetCategoryMinScore(cat Category, minScore float64) error {
	if minScore < 0 || minScore > 2 {
		return fmt.Errorf("invalid min score %.2f for category %s (must be 0-2)", minScore, cat)
	}
	m.categoryMinScores[cat] = minScore
	return nil
}

// MinScore returns the cutoff for a category, falling back to the default.
func (m *Matcher) MinScore(cat Category) float64 {
	if score, ok := m.categoryMinScores[cat]; ok {
		return score
	}
	return m.minScore
}

// Algorithm returns the configured similarity algorithm name.
func (m *Matcher) Algorithm() string {
	return m.algorithm
}

// ValidateConfig checks the matcher configuration.
func (m *Matcher) ValidateConfig() error {
	validAlgorithms := map[string]bool{
		"composite":    true,
		"jaro-winkler": true,
		"levenshtein":  true,
		"cosine":       true,
	}

	if !validAlgorithms[m.algorithm] {
		return fmt.Errorf("invalid algorithm: %s (must be composite, jaro-winkler, levenshtein, or cosine)", m.algorithm)
	}
	return nil
}

// Similarity returns the configured metric for a pair of strings. The
// composite and jaro-winkler metrics are computed in-process because the
// ranking contract depends on their exact arithmetic; levenshtein is
// delegated to go-edlib and cosine uses character bigrams.
func (m *Matcher) Similarity(a, b string) float64 {
	switch m.algorithm {
	case "jaro-winkler":
		return similarity.JaroWinkler(similarity.Normalize(a), similarity.Normalize(b))
	case "levenshtein":
		return m.levenshteinSimilarity(a, b)
	case "cosine":
		return m.cosineSimilarity(a, b)
	default:
		return similarity.Score(a, b)
	}
}

// levenshteinSimilarity converts go-edlib's normalized Levenshtein distance
// into a similarity.
func (m *Matcher) levenshteinSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	score, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0.0
	}
	return float64(score)
}

// cosineSimilarity calculates cosine similarity over character bigrams.
func (m *Matcher) cosineSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)
	if len(bigramsA) == 0 || len(bigramsB) == 0 {
		return 0.0
	}

	intersection := 0.0
	for bg := range bigramsA {
		if bigramsB[bg] {
			intersection++
		}
	}

	magnitude := math.Sqrt(float64(len(bigramsA))) * math.Sqrt(float64(len(bigramsB)))
	if magnitude == 0 {
		return 0.0
	}
	return intersection / magnitude
}

// bigrams extracts all 2-character subsequences from a string.
func bigrams(s string) map[string]bool {
	set := make(map[string]bool)
	if len(s) < 2 {
		set[s] = true
		return set
	}
	for i := 0; i < len(s)-1; i++ {
		set[s[i:i+2]] = true
	}
	return set
}

// Prefilter trims an oversized flat candidate pool with the configured
// metric before the composite ranking runs, keeping every name whose
// similarity to the unknown reaches the threshold. Pools at or under limit
// pass through untouched.
func (m *Matcher) Prefilter(unknown string, names []string, limit int, threshold float64) []string {
	if limit <= 0 || len(names) <= limit {
		return names
	}

	kept := make([]string, 0, limit)
	for _, name := range names {
		if name == "" {
			continue
		}
		if m.Similarity(unknown, name) >= threshold {
			kept = append(kept, name)
		}
	}
	return kept
}

// SuggestNames ranks a flat candidate pool for a category and drops results
// below the category's cutoff. The result is empty (never nil) when the
// unknown name is empty, the pool is empty, or nothing survives the cutoff.
func (m *Matcher) SuggestNames(cat Category, unknown string, names []string) []suggest.NameMatch {
	ranked := suggest.RankNames(unknown, names)

	kept := []suggest.NameMatch{}
	minScore := m.MinScore(cat)
	for _, match := range ranked {
		if match.Score >= minScore {
			kept = append(kept, match)
		}
	}
	return kept
}

// SuggestKeyed ranks a keyed candidate pool for a category and drops
// results below the category's cutoff. The payload type is opaque and
// passes through untouched. A free function rather than a method because
// methods cannot introduce type parameters.
func SuggestKeyed[T any](m *Matcher, cat Category, unknown string, pool []suggest.Candidate[T]) []suggest.Match[T] {
	ranked := suggest.RankKeyed(unknown, pool)

	kept := []suggest.Match[T]{}
	minScore := m.MinScore(cat)
	for _, match := range ranked {
		if match.Score >= minScore {
			kept = append(kept, match)
		}
	}
	return kept
}
