package languages

import (
	"regexp"

	"splitkit/internal/analyze"
)

// RegisterPython adds rules for indentation-based definitions (Python).
func RegisterPython(r *analyze.Registry) {
	r.Register(&analyze.RuleSet{
		Name: "python",
		Rules: []analyze.Rule{
			{Kind: analyze.KindClass, Pattern: regexp.MustCompile(`^class\s+(?P<name>\w+)`)},
			{Kind: analyze.KindFunction, Pattern: regexp.MustCompile(`^(?:async\s+)?def\s+(?P<name>\w+)`)},
			{Kind: analyze.KindImport, Pattern: regexp.MustCompile(`^(?:from\s+\S+\s+import\b|import\s+\S+)`)},
		},
		Extensions: []string{"py", "pyi"},
	})
}
