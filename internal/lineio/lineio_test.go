package lineio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for lineio:
// - ReadLines keeps trailing newlines so Join(lines, "") reproduces the file
// - ReadLines handles a file without a final newline
// - ReadLines returns an empty slice for an empty file
// - WriteLines round-trips ReadLines output byte-for-byte
// - EndsWithNewline reflects the last line's terminator

func TestReadLines_KeepsNewlines(t *testing.T) {
	path := writeFile(t, "alpha\nbeta\ngamma\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha\n", "beta\n", "gamma\n"}, lines)
	assert.Equal(t, "alpha\nbeta\ngamma\n", strings.Join(lines, ""))
}

func TestReadLines_NoFinalNewline(t *testing.T) {
	path := writeFile(t, "alpha\nbeta")

	lines, err := ReadLines(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha\n", "beta"}, lines)
}

func TestReadLines_EmptyFile(t *testing.T) {
	path := writeFile(t, "")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestWriteLines_RoundTrip(t *testing.T) {
	content := "one\n\nthree\nfour"
	path := writeFile(t, content)

	lines, err := ReadLines(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "copy.txt")
	require.NoError(t, WriteLines(out, lines))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestEndsWithNewline(t *testing.T) {
	assert.True(t, EndsWithNewline(nil))
	assert.True(t, EndsWithNewline([]string{"a\n"}))
	assert.False(t, EndsWithNewline([]string{"a\n", "b"}))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
