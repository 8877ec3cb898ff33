// Package lineio reads and writes files as slices of newline-retaining
// lines, so that extracted ranges can be reassembled byte-for-byte.
package lineio

import (
	"os"
	"strings"
)

// ReadLines reads the whole file into memory and splits it into lines.
// Every line keeps its trailing newline except possibly the last, matching
// the byte content of the file exactly: Join(lines, "") reproduces it.
// An empty file yields an empty slice.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	// SplitAfter leaves a trailing empty element when the file ends in a
	// newline; it is not a line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// WriteLines writes the concatenated lines to path, creating or truncating it.
func WriteLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644)
}

// EndsWithNewline reports whether the last line carries a trailing newline.
// An empty slice counts as newline-terminated so appending to it never
// inserts a spurious boundary.
func EndsWithNewline(lines []string) bool {
	if len(lines) == 0 {
		return true
	}
	return strings.HasSuffix(lines[len(lines)-1], "\n")
}
