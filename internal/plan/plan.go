// Package plan loads and validates extraction plans: ordered JSON arrays of
// extraction requests consumed by the batch runner.
package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"splitkit/internal/extract"
)

// Item is one entry of a plan file. Mode and CreateDirs are optional in the
// JSON; Mode defaults to copy and CreateDirs to true.
type Item struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Mode       string `json:"mode,omitempty"`
	CreateDirs *bool  `json:"create_dirs,omitempty"`
}

// Plan is an ordered sequence of extraction items. Order matters: a move
// earlier in the plan shifts line numbers seen by later items on the same
// source.
type Plan []Item

// MalformedPlanError reports a plan that failed schema validation. Index is
// the offending item's position (0-based), or -1 when the document as a
// whole is bad.
type MalformedPlanError struct {
	Index  int
	Reason string
}

func (e *MalformedPlanError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed plan: %s", e.Reason)
	}
	return fmt.Sprintf("malformed plan: item %d: %s", e.Index+1, e.Reason)
}

// Load reads and parses a plan from a JSON file.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a plan from raw JSON.
func Parse(data []byte) (Plan, error) {
	// Decode into raw messages first so a wrong-typed field is reported
	// against its item instead of as a bare unmarshal error.
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedPlanError{Index: -1, Reason: "document is not a JSON array of extraction requests"}
	}

	p := make(Plan, 0, len(raw))
	for i, msg := range raw {
		var item Item
		if err := json.Unmarshal(msg, &item); err != nil {
			return nil, &MalformedPlanError{Index: i, Reason: fmt.Sprintf("not a valid extraction request: %v", err)}
		}
		if err := validate(item); err != nil {
			return nil, &MalformedPlanError{Index: i, Reason: err.Error()}
		}
		p = append(p, item)
	}
	return p, nil
}

func validate(item Item) error {
	if item.Source == "" {
		return fmt.Errorf("missing required key %q", "source")
	}
	if item.Target == "" {
		return fmt.Errorf("missing required key %q", "target")
	}
	if item.Start < 1 {
		return fmt.Errorf("start must be a positive line number, got %d", item.Start)
	}
	if item.End < item.Start {
		return fmt.Errorf("end %d is less than start %d", item.End, item.Start)
	}
	switch item.Mode {
	case "", string(extract.ModeCopy), string(extract.ModeMove):
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", extract.ModeCopy, extract.ModeMove, item.Mode)
	}
	return nil
}

// Request converts the item to an extraction request, applying the copy-mode
// and create-dirs defaults.
func (item Item) Request() extract.Request {
	createDirs := true
	if item.CreateDirs != nil {
		createDirs = *item.CreateDirs
	}
	mode := extract.Mode(item.Mode)
	if mode == "" {
		mode = extract.ModeCopy
	}
	return extract.Request{
		Source:     item.Source,
		Target:     item.Target,
		Start:      item.Start,
		End:        item.End,
		Mode:       mode,
		CreateDirs: createDirs,
	}
}
