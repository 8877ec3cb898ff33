package extract

import "fmt"

// NotFoundError reports a missing source file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// RangeError reports a start/end pair outside the file's valid line range.
type RangeError struct {
	Start int
	End   int
	Total int
}

func (e *RangeError) Error() string {
	switch {
	case e.Total == 0:
		return "file is empty; no lines to extract"
	case e.Start < 1:
		return fmt.Sprintf("start line %d is invalid; valid range is 1-%d", e.Start, e.Total)
	case e.End < e.Start:
		return fmt.Sprintf("end line %d cannot be less than start line %d", e.End, e.Start)
	case e.Start > e.Total:
		return fmt.Sprintf("start line %d exceeds file length %d; valid range is 1-%d", e.Start, e.Total, e.Total)
	default:
		return fmt.Sprintf("end line %d exceeds file length %d; valid range is 1-%d", e.End, e.Total, e.Total)
	}
}

// PermissionError reports a path that cannot be written. ReadOnlyFS marks the
// read-only-filesystem case, where switching from move to copy mode would
// help and the message says so.
type PermissionError struct {
	Path       string
	Op         string // what we were trying to do, e.g. "write target"
	ReadOnlyFS bool
}

func (e *PermissionError) Error() string {
	if e.ReadOnlyFS {
		return fmt.Sprintf("cannot %s %s: read-only filesystem (use copy mode instead of move)", e.Op, e.Path)
	}
	return fmt.Sprintf("cannot %s %s: permission denied", e.Op, e.Path)
}
