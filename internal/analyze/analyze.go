// Package analyze scans source files with per-language line patterns to find
// structural markers (functions, classes, imports, section banners) and to
// suggest size-bounded split points aligned to those markers.
//
// Detection is purely line-based: there is no brace or indentation tracking
// and no string/comment-literal awareness, so a declaration-shaped line
// inside a string literal will match. That is a documented limitation of the
// approach, not something the scanner tries to compensate for.
package analyze

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"splitkit/internal/lineio"
)

// Kind classifies a structural marker.
type Kind string

const (
	KindFunction Kind = "function"
	KindClass    Kind = "class"
	KindImport   Kind = "import"
	KindSection  Kind = "section"
)

// Marker is a line believed to begin a function, class, import, or logical
// section. Markers are derived transiently from the file text and used as
// snap points for split suggestions.
type Marker struct {
	Line int
	Kind Kind
	Name string // declared identifier, when the pattern captures one
	Text string // trimmed matched line, truncated for display
}

// LineRange is an inclusive 1-indexed line span.
type LineRange struct {
	Start int
	End   int
}

// Analysis is the marker scan result for one file.
type Analysis struct {
	File       string
	TotalLines int
	Markers    []Marker
	// Imports spans the first to the last detected import line, or nil when
	// the file has none.
	Imports *LineRange
}

// Analyzer scans files using the rule sets in its registry.
type Analyzer struct {
	registry *Registry
}

// New creates an analyzer backed by the given registry.
func New(r *Registry) *Analyzer {
	return &Analyzer{registry: r}
}

// Comment banners that mark logical sections, detected for every language:
// a comment leader followed by a ruled line or a SHOUTING title.
var bannerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[/#*]+\s*[-=]+`),
	regexp.MustCompile(`^[/#*]+\s*[A-Z][A-Z\s]+[A-Z]`),
}

const markerTextLimit = 50

// Analyze scans the file and returns its markers in line order.
func (a *Analyzer) Analyze(path string) (*Analysis, error) {
	lines, err := lineio.ReadLines(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	set := a.registry.Lookup(path)
	analysis := &Analysis{File: path, TotalLines: len(lines)}

	blankRun := 0
	for i, raw := range lines {
		lineNo := i + 1
		stripped := strings.TrimSpace(raw)

		if stripped == "" {
			blankRun++
			continue
		}

		// Blank-gap sections for the fallback family: the first non-blank
		// line after two or more blank lines starts a new section.
		if set.SectionGaps && blankRun >= 2 {
			analysis.addMarker(Marker{Line: lineNo, Kind: KindSection, Text: truncate(stripped)})
		}
		blankRun = 0

		// Banner comments count as section markers in every family.
		if matchesBanner(stripped) {
			analysis.addMarker(Marker{Line: lineNo, Kind: KindSection, Text: truncate(stripped)})
			continue
		}

		// Comment lines can't declare anything.
		if strings.HasPrefix(stripped, "#") || strings.HasPrefix(stripped, "//") {
			continue
		}

		for _, rule := range set.Rules {
			m := rule.Pattern.FindStringSubmatch(raw)
			if m == nil {
				continue
			}
			marker := Marker{
				Line: lineNo,
				Kind: rule.Kind,
				Name: captureName(rule.Pattern, m),
				Text: truncate(stripped),
			}
			analysis.addMarker(marker)
			if rule.Kind == KindImport {
				if analysis.Imports == nil {
					analysis.Imports = &LineRange{Start: lineNo}
				}
				analysis.Imports.End = lineNo
			}
			break
		}
	}

	return analysis, nil
}

func (a *Analysis) addMarker(m Marker) {
	a.Markers = append(a.Markers, m)
}

// Functions returns the function markers in line order.
func (a *Analysis) Functions() []Marker { return a.byKind(KindFunction) }

// Classes returns the class markers in line order.
func (a *Analysis) Classes() []Marker { return a.byKind(KindClass) }

// Sections returns the section markers in line order.
func (a *Analysis) Sections() []Marker { return a.byKind(KindSection) }

func (a *Analysis) byKind(k Kind) []Marker {
	var out []Marker
	for _, m := range a.Markers {
		if m.Kind == k {
			out = append(out, m)
		}
	}
	return out
}

func matchesBanner(stripped string) bool {
	for _, p := range bannerPatterns {
		if p.MatchString(stripped) {
			return true
		}
	}
	return false
}

func captureName(re *regexp.Regexp, match []string) string {
	idx := re.SubexpIndex("name")
	if idx < 0 || idx >= len(match) {
		return ""
	}
	return match[idx]
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= markerTextLimit {
		return s
	}
	return string(runes[:markerTextLimit]) + "..."
}
