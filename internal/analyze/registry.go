package analyze

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Rule pairs a marker kind with a line pattern. Patterns are matched against
// the raw physical line and should be anchored at the start. A pattern may
// define a "name" capture group for the declared identifier.
type Rule struct {
	Kind    Kind
	Pattern *regexp.Regexp
}

// RuleSet is the detection rules for one language family.
type RuleSet struct {
	// Name of the family, e.g. "python".
	Name string
	// Rules are tried in order; the first match wins for a line.
	Rules []Rule
	// SectionGaps marks the fallback family: with no declaration patterns
	// to go on, a run of blank lines is treated as a section boundary.
	SectionGaps bool
	Extensions  []string
}

// Registry maps file extensions to rule sets, with a fallback set for
// unrecognized extensions.
type Registry struct {
	sets     map[string]*RuleSet // extension (without dot) → set
	fallback *RuleSet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*RuleSet)}
}

// Register adds a rule set under all of its extensions.
func (r *Registry) Register(set *RuleSet) {
	for _, ext := range set.Extensions {
		r.sets[ext] = set
	}
}

// RegisterFallback sets the rule set used when no extension matches.
func (r *Registry) RegisterFallback(set *RuleSet) {
	r.fallback = set
}

// Lookup returns the rule set for a file path based on its extension,
// falling back to the generic set.
func (r *Registry) Lookup(path string) *RuleSet {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if set, ok := r.sets[ext]; ok {
		return set
	}
	if r.fallback != nil {
		return r.fallback
	}
	return &RuleSet{Name: "none"}
}
