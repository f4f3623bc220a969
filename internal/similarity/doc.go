// Package similarity implements the fuzzy identifier matching primitives
// used to build "did you mean" suggestions.
//
// The package is a small stack of pure functions:
//
//  1. Normalize - case-folds an identifier and strips separators so two
//     spellings become comparable.
//  2. SplitIdentifier - splits an identifier into lowercase word tokens
//     along casing, underscore, and digit boundaries.
//  3. Jaro / JaroWinkler - bounded [0,1] string similarity with a
//     shared-prefix boost.
//  4. Score - the composite ranking metric: Jaro-Winkler base plus
//     exact-match, containment, and token-overlap bonuses minus a length
//     penalty. The result is a relevance metric, not a probability, and
//     may exceed 1.0.
//
// Every function is a pure function of its arguments: no shared state, no
// allocation beyond local buffers, no panics for any input including empty
// and pathological strings. Callers may invoke them concurrently without
// synchronization.
package similarity
