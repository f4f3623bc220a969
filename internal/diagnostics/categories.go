// Package diagnostics is the caller-side layer on top of the suggest
// ranker: it knows the diagnostic categories a compiler front end reports,
// applies each category's minimum-relevance cutoff to the ranked
// suggestions, and formats "did you mean" messages from opaque candidate
// payloads.
//
// The engine underneath never applies a cutoff of its own; every threshold
// lives here, per category, because call sites use different strictness.
package diagnostics

// Category identifies which kind of unresolved name a suggestion request
// is for.
type Category string

const (
	CategoryIdentifier    Category = "identifier"
	CategoryMember        Category = "member"
	CategoryNamespace     Category = "namespace"
	CategoryType          Category = "type"
	CategoryNamedArgument Category = "named_argument"
)

// Categories lists every diagnostic category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryIdentifier,
		CategoryMember,
		CategoryNamespace,
		CategoryType,
		CategoryNamedArgument,
	}
}

// DefaultMinScore is the relevance cutoff used when a category has no
// override configured.
const DefaultMinScore = 0.3

// DefaultCategoryMinScores holds the stricter per-category cutoffs.
// Namespaces and named arguments come from small, closed pools where a weak
// match is more misleading than no suggestion at all.
var DefaultCategoryMinScores = map[Category]float64{
	CategoryNamespace:     0.4,
	CategoryNamedArgument: 0.4,
}

// Noun returns the human-readable noun used in diagnostic messages.
func (c Category) Noun() string {
	switch c {
	case CategoryIdentifier:
		return "identifier"
	case CategoryMember:
		return "member"
	case CategoryNamespace:
		return "namespace"
	case CategoryType:
		return "type"
	case CategoryNamedArgument:
		return "named argument"
	default:
		return "name"
	}
}
