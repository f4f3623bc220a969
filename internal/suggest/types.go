// Package suggest ranks candidate identifiers against an unresolved name
// and returns the best few as "did you mean" suggestions.
//
// The ranker is a pure function over its inputs: it filters invalid
// candidates, excludes the unknown name itself, scores the rest with the
// composite metric from the similarity package, and returns at most
// MaxSuggestions results sorted by descending score. It applies no minimum
// score of its own; callers that want a relevance floor filter the returned
// scores (different call sites use different cutoffs).
package suggest

import "fmt"

// MaxSuggestions is the largest number of results either ranking entry
// point returns.
const MaxSuggestions = 5

// Candidate pairs a name with an arbitrary caller-defined payload. The
// payload is opaque to the ranker: it is carried through to the matching
// result untouched and never inspected.
type Candidate[T any] struct {
	Name  string
	Value T
}

// Match is a ranked candidate: the candidate's name and payload plus its
// composite relevance score.
type Match[T any] struct {
	Name  string
	Value T
	Score float64
}

// String returns a human-readable representation of a Match.
func (m Match[T]) String() string {
	return fmt.Sprintf("Match{Name: %q, Score: %.3f}", m.Name, m.Score)
}

// NameMatch is a ranked candidate from the flat-name entry point.
type NameMatch struct {
	Name  string
	Score float64
}

// String returns a human-readable representation of a NameMatch.
func (m NameMatch) String() string {
	return fmt.Sprintf("NameMatch{Name: %q, Score: %.3f}", m.Name, m.Score)
}
