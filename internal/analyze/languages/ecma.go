package languages

import (
	"regexp"

	"splitkit/internal/analyze"
)

// RegisterEcma adds rules for JavaScript and TypeScript declaration forms:
// function declarations, const-bound arrow/function expressions, classes,
// and import/re-export lines.
func RegisterEcma(r *analyze.Registry) {
	r.Register(&analyze.RuleSet{
		Name: "ecma",
		Rules: []analyze.Rule{
			{Kind: analyze.KindClass, Pattern: regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+(?P<name>\w+)`)},
			{Kind: analyze.KindFunction, Pattern: regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*(?P<name>\w+)`)},
			{Kind: analyze.KindFunction, Pattern: regexp.MustCompile(`^(?:export\s+)?const\s+(?P<name>\w+)\s*=\s*(?:async\s+)?(?:\([^)]*\)|\w+)\s*=>`)},
			{Kind: analyze.KindFunction, Pattern: regexp.MustCompile(`^(?:export\s+)?const\s+(?P<name>\w+)\s*=\s*(?:async\s+)?function\b`)},
			{Kind: analyze.KindImport, Pattern: regexp.MustCompile(`^(?:import\s|export\s+.+\sfrom\s)`)},
		},
		Extensions: []string{"js", "jsx", "ts", "tsx"},
	})
}
