package diagnostics

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/dym/internal/suggest"
)

// Report is one "did you mean" diagnostic: the unresolved name, its
// category, and the suggestion lines already rendered by the caller's
// payload formatter.
type Report struct {
	Category    Category
	Unknown     string
	Suggestions []string
}

// NewReport builds a report from flat name matches.
func NewReport(cat Category, unknown string, matches []suggest.NameMatch) Report {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.Name)
	}
	return Report{Category: cat, Unknown: unknown, Suggestions: lines}
}

// NewKeyedReport builds a report from keyed matches, rendering each opaque
// payload with the caller-supplied formatter. The formatter is the only
// code that ever looks inside the payload: members render signatures,
// fields render types, namespaces render plain names.
func NewKeyedReport[T any](cat Category, unknown string, matches []suggest.Match[T], render func(name string, value T) string) Report {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		if render != nil {
			lines = append(lines, render(m.Name, m.Value))
		} else {
			lines = append(lines, m.Name)
		}
	}
	return Report{Category: cat, Unknown: unknown, Suggestions: lines}
}

// Message renders the single-line diagnostic text.
func (r Report) Message() string {
	if len(r.Suggestions) == 0 {
		return fmt.Sprintf("unknown %s %q", r.Category.Noun(), r.Unknown)
	}
	if len(r.Suggestions) == 1 {
		return fmt.Sprintf("unknown %s %q; did you mean %q?", r.Category.Noun(), r.Unknown, r.Suggestions[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "unknown %s %q; did you mean one of:", r.Category.Noun(), r.Unknown)
	for _, s := range r.Suggestions {
		b.WriteString("\n  ")
		b.WriteString(s)
	}
	return b.String()
}

// HasSuggestions reports whether any candidate survived the cutoff.
func (r Report) HasSuggestions() bool {
	return len(r.Suggestions) > 0
}
