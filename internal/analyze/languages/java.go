package languages

import (
	"regexp"

	"splitkit/internal/analyze"
)

// RegisterJava adds rules for Java method, type, and import declarations.
// Method detection keys on a leading modifier run followed by a return type
// and an open paren; it will also match constructors with modifiers, which
// is acceptable for split-point purposes.
func RegisterJava(r *analyze.Registry) {
	r.Register(&analyze.RuleSet{
		Name: "java",
		Rules: []analyze.Rule{
			{Kind: analyze.KindClass, Pattern: regexp.MustCompile(`^(?:(?:public|final|abstract)\s+)*(?:class|interface|enum)\s+(?P<name>\w+)`)},
			{Kind: analyze.KindFunction, Pattern: regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|final|synchronized|abstract|native)\s+)+[\w<>\[\],.\s]+\s(?P<name>\w+)\s*\(`)},
			{Kind: analyze.KindImport, Pattern: regexp.MustCompile(`^import\s+`)},
		},
		Extensions: []string{"java"},
	})
}
