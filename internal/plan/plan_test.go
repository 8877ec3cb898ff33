package plan

import (
	"os"
	"path/filepath"
	"testing"

	"splitkit/internal/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for plan:
// - Parse accepts a well-formed plan and preserves order
// - Parse accepts an empty array as an empty plan
// - rejects a document that is not an array
// - rejects wrong-typed fields, naming the offending item
// - rejects missing required keys
// - rejects an invalid mode value and start/end violations
// - Item.Request applies the copy-mode and create-dirs defaults
// - Load reads a plan from disk and reports a missing file

func TestParse_ValidPlan(t *testing.T) {
	p, err := Parse([]byte(`[
		{"source": "app.js", "target": "components/header.js", "start": 10, "end": 50},
		{"source": "app.js", "target": "components/footer.js", "start": 100, "end": 150, "mode": "move"}
	]`))
	require.NoError(t, err)
	require.Len(t, p, 2)

	assert.Equal(t, "components/header.js", p[0].Target)
	assert.Equal(t, 10, p[0].Start)
	assert.Equal(t, "move", p[1].Mode)
}

func TestParse_EmptyArray(t *testing.T) {
	p, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestParse_NotAnArray(t *testing.T) {
	_, err := Parse([]byte(`{"source": "app.js"}`))

	var malformed *MalformedPlanError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, -1, malformed.Index)
	assert.Contains(t, err.Error(), "not a JSON array")
}

func TestParse_WrongType(t *testing.T) {
	_, err := Parse([]byte(`[
		{"source": "a.js", "target": "b.js", "start": 1, "end": 2},
		{"source": "a.js", "target": "b.js", "start": "ten", "end": 20}
	]`))

	var malformed *MalformedPlanError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Index)
	assert.Contains(t, err.Error(), "item 2")
}

func TestParse_MissingKey(t *testing.T) {
	_, err := Parse([]byte(`[{"source": "a.js", "start": 1, "end": 2}]`))

	var malformed *MalformedPlanError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), `"target"`)
}

func TestParse_BadMode(t *testing.T) {
	_, err := Parse([]byte(`[{"source": "a.js", "target": "b.js", "start": 1, "end": 2, "mode": "swap"}]`))

	var malformed *MalformedPlanError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "mode")
}

func TestParse_BadRange(t *testing.T) {
	_, err := Parse([]byte(`[{"source": "a.js", "target": "b.js", "start": 0, "end": 2}]`))
	require.Error(t, err)

	_, err = Parse([]byte(`[{"source": "a.js", "target": "b.js", "start": 5, "end": 2}]`))
	require.Error(t, err)
}

func TestItemRequest_Defaults(t *testing.T) {
	item := Item{Source: "a.js", Target: "b.js", Start: 1, End: 2}
	req := item.Request()

	assert.Equal(t, extract.ModeCopy, req.Mode)
	assert.True(t, req.CreateDirs)

	noDirs := false
	item = Item{Source: "a.js", Target: "b.js", Start: 1, End: 2, Mode: "move", CreateDirs: &noDirs}
	req = item.Request()

	assert.Equal(t, extract.ModeMove, req.Mode)
	assert.False(t, req.CreateDirs)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"source": "a.js", "target": "b.js", "start": 1, "end": 2}]`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
