// Package extract copies or moves inclusive 1-indexed line ranges between
// files. Copy mode never touches the source; move mode rewrites it with the
// extracted range removed.
package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"splitkit/internal/lineio"
)

// Mode selects whether the extracted range is kept in the source.
type Mode string

const (
	ModeCopy Mode = "copy"
	ModeMove Mode = "move"
)

// Request describes one extraction. Start and End are 1-indexed and
// inclusive. An empty Mode means copy, the safety default.
type Request struct {
	Source     string
	Target     string
	Start      int
	End        int
	Mode       Mode
	CreateDirs bool
}

// Result reports a completed extraction.
type Result struct {
	LinesExtracted int
	Target         string
	TargetAction   string // "created" or "appended"
	SourceAction   string // "kept in source" or "removed from source"
}

// Extract performs one validated extraction. All validation happens before
// any write; the target content and (for move mode) the rewritten source are
// built in full before being committed, and the source is only rewritten
// after the target write succeeded, so a failure never leaves a half-written
// range behind.
func Extract(req Request) (*Result, error) {
	mode := req.Mode
	if mode == "" {
		mode = ModeCopy
	}
	if mode != ModeCopy && mode != ModeMove {
		return nil, fmt.Errorf("unknown mode %q (want copy or move)", req.Mode)
	}

	lines, err := lineio.ReadLines(req.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: req.Source}
		}
		return nil, classifyIOErr(req.Source, "read source", err)
	}

	if mode == ModeMove {
		// Probe source writability up front so a read-only source fails
		// before the target is touched.
		f, err := os.OpenFile(req.Source, os.O_WRONLY, 0)
		if err != nil {
			return nil, classifyIOErr(req.Source, "modify source", err)
		}
		f.Close()
	}

	total := len(lines)
	if req.Start < 1 || req.End < req.Start || req.End > total {
		return nil, &RangeError{Start: req.Start, End: req.End, Total: total}
	}
	extracted := lines[req.Start-1 : req.End]

	targetDir := filepath.Dir(req.Target)
	if _, err := os.Stat(targetDir); errors.Is(err, fs.ErrNotExist) {
		if !req.CreateDirs {
			return nil, fmt.Errorf("target directory does not exist: %s", targetDir)
		}
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return nil, classifyIOErr(targetDir, "create target directory", err)
		}
	}

	result := &Result{
		LinesExtracted: req.End - req.Start + 1,
		Target:         req.Target,
		SourceAction:   "kept in source",
	}

	existing, err := lineio.ReadLines(req.Target)
	switch {
	case err == nil:
		// Append; insert a boundary newline so the first extracted line
		// never merges with the target's last line.
		var b strings.Builder
		if !lineio.EndsWithNewline(existing) {
			b.WriteByte('\n')
		}
		for _, line := range extracted {
			b.WriteString(line)
		}
		f, err := os.OpenFile(req.Target, os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, classifyIOErr(req.Target, "write target", err)
		}
		_, werr := f.WriteString(b.String())
		cerr := f.Close()
		if werr != nil {
			return nil, classifyIOErr(req.Target, "write target", werr)
		}
		if cerr != nil {
			return nil, classifyIOErr(req.Target, "write target", cerr)
		}
		result.TargetAction = "appended"
	case errors.Is(err, fs.ErrNotExist):
		if err := lineio.WriteLines(req.Target, extracted); err != nil {
			return nil, classifyIOErr(req.Target, "write target", err)
		}
		result.TargetAction = "created"
	default:
		return nil, classifyIOErr(req.Target, "read target", err)
	}

	if mode == ModeMove {
		remaining := make([]string, 0, total-len(extracted))
		remaining = append(remaining, lines[:req.Start-1]...)
		remaining = append(remaining, lines[req.End:]...)
		if err := lineio.WriteLines(req.Source, remaining); err != nil {
			return nil, classifyIOErr(req.Source, "modify source", err)
		}
		result.SourceAction = "removed from source"
	}

	return result, nil
}

// classifyIOErr maps filesystem errors onto the typed errors callers match
// with errors.As. EROFS gets its own form so the CLI can suggest copy mode.
func classifyIOErr(path, op string, err error) error {
	if errors.Is(err, syscall.EROFS) {
		return &PermissionError{Path: path, Op: op, ReadOnlyFS: true}
	}
	if errors.Is(err, fs.ErrPermission) {
		return &PermissionError{Path: path, Op: op}
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
