package analyze

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"splitkit/internal/plan"
)

// DefaultTargetSize is the default number of lines per suggested chunk.
const DefaultTargetSize = 200

// Chunk is one suggested split: an inclusive line range of the analyzed file.
type Chunk struct {
	Start int
	End   int
	// Label describes the leading marker when the chunk begins on one,
	// e.g. "class Parser".
	Label string
}

// Lines returns the chunk's line count.
func (c Chunk) Lines() int { return c.End - c.Start + 1 }

// Suggestion is a proposed partitioning of a file into target-sized chunks.
// NoSplit means the file already fits the target size; the single whole-file
// chunk is still present so callers get an explicit result, not an empty one.
type Suggestion struct {
	NoSplit bool
	Chunks  []Chunk
}

// Suggest partitions the analyzed file into chunks of roughly targetSize
// lines. Each chunk boundary is the candidate line start+targetSize snapped
// to the nearest marker within one target-size of lines in either direction
// (the earlier marker wins a distance tie); with no marker in that window
// the cut lands exactly on the candidate. The final chunk always runs to the
// last line regardless of size.
func Suggest(a *Analysis, targetSize int) *Suggestion {
	if targetSize < 1 {
		targetSize = DefaultTargetSize
	}

	if a.TotalLines == 0 {
		return &Suggestion{NoSplit: true}
	}
	if a.TotalLines <= targetSize {
		return &Suggestion{
			NoSplit: true,
			Chunks:  []Chunk{{Start: 1, End: a.TotalLines, Label: labelAt(a, 1)}},
		}
	}

	var chunks []Chunk
	start := 1
	for start <= a.TotalLines {
		remaining := a.TotalLines - start + 1
		if remaining <= targetSize {
			chunks = append(chunks, Chunk{Start: start, End: a.TotalLines, Label: labelAt(a, start)})
			break
		}

		candidate := start + targetSize
		boundary := snapToMarker(a.Markers, candidate, start, a.TotalLines, targetSize)
		if boundary == 0 {
			boundary = candidate
		}
		chunks = append(chunks, Chunk{Start: start, End: boundary - 1, Label: labelAt(a, start)})
		start = boundary
	}

	return &Suggestion{Chunks: chunks}
}

// snapToMarker returns the marker line nearest to candidate that can begin
// the next chunk, or 0 when no marker lies within the look-back/look-ahead
// window. A usable marker must fall strictly after the current chunk's start
// and at or before the last line.
func snapToMarker(markers []Marker, candidate, start, total, window int) int {
	best := 0
	bestDist := window + 1
	for _, m := range markers {
		if m.Line <= start || m.Line > total {
			continue
		}
		dist := m.Line - candidate
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = m.Line
			bestDist = dist
		}
	}
	return best
}

func labelAt(a *Analysis, line int) string {
	for _, m := range a.Markers {
		if m.Line == line && m.Name != "" {
			return fmt.Sprintf("%s %s", m.Kind, m.Name)
		}
	}
	return ""
}

var unsafeNameChars = regexp.MustCompile(`\W+`)

// PlanFor turns a suggestion into an extraction plan the batch tool can run
// directly. Every item copies from the analyzed file; targets live next to
// it, named after the chunk's leading marker when it has a name and
// numbered sequentially otherwise. The plan is advisory output only.
func PlanFor(a *Analysis, s *Suggestion) plan.Plan {
	dir := filepath.Dir(a.File)
	ext := filepath.Ext(a.File)
	base := strings.TrimSuffix(filepath.Base(a.File), ext)

	p := make(plan.Plan, 0, len(s.Chunks))
	for i, c := range s.Chunks {
		part := fmt.Sprintf("part%d", i+1)
		if name := markerNameAt(a, c.Start); name != "" {
			part = unsafeNameChars.ReplaceAllString(name, "_")
		}
		p = append(p, plan.Item{
			Source: a.File,
			Target: filepath.Join(dir, base+"_"+part+ext),
			Start:  c.Start,
			End:    c.End,
		})
	}
	return p
}

func markerNameAt(a *Analysis, line int) string {
	for _, m := range a.Markers {
		if m.Line == line {
			return m.Name
		}
	}
	return ""
}
