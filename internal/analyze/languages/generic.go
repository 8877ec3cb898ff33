package languages

import "splitkit/internal/analyze"

// RegisterGeneric installs the fallback rule set for unrecognized
// extensions. With no declaration grammar to lean on it only detects
// comment-banner markers and blank-line-delimited sections, which is enough
// for pure size-based splitting to snap somewhere sensible.
func RegisterGeneric(r *analyze.Registry) {
	r.RegisterFallback(&analyze.RuleSet{
		Name:        "generic",
		SectionGaps: true,
	})
}

// DefaultRegistry builds a registry with every known rule set installed.
func DefaultRegistry() *analyze.Registry {
	r := analyze.NewRegistry()
	RegisterPython(r)
	RegisterEcma(r)
	RegisterJava(r)
	RegisterGeneric(r)
	return r
}
