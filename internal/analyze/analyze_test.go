package analyze_test

import (
	"os"
	"path/filepath"
	"testing"

	"splitkit/internal/analyze"
	"splitkit/internal/analyze/languages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for analyze:
// - Python: def/async def/class/import detection with names, imports range
//   spans the first to last import line
// - JavaScript/TypeScript: function declarations, const arrow functions,
//   exported classes, import lines
// - Java: modifier-prefixed methods, classes, imports
// - comment banners become section markers in every family
// - comment lines never produce function/class markers
// - generic fallback: blank-line gaps become section markers
// - missing file reports the path

func newAnalyzer() *analyze.Analyzer {
	return analyze.New(languages.DefaultRegistry())
}

func analyzeSource(t *testing.T, name, content string) *analyze.Analysis {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	a, err := newAnalyzer().Analyze(path)
	require.NoError(t, err)
	return a
}

func TestAnalyze_Python(t *testing.T) {
	a := analyzeSource(t, "mod.py", `import os
from pathlib import Path

class Splitter:
    def split(self):
        pass

async def fetch(url):
    pass

def main():
    pass
`)

	require.NotNil(t, a.Imports)
	assert.Equal(t, 1, a.Imports.Start)
	assert.Equal(t, 2, a.Imports.End)

	classes := a.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, "Splitter", classes[0].Name)
	assert.Equal(t, 4, classes[0].Line)

	funcs := a.Functions()
	require.Len(t, funcs, 2)
	assert.Equal(t, "fetch", funcs[0].Name)
	assert.Equal(t, 8, funcs[0].Line)
	assert.Equal(t, "main", funcs[1].Name)
}

func TestAnalyze_JavaScript(t *testing.T) {
	a := analyzeSource(t, "app.js", `import React from "react";

export function render(tree) {}

const handler = async (event) => {
  return event;
}

export const parse = function (input) {}

export class Store {}
`)

	require.NotNil(t, a.Imports)
	assert.Equal(t, 1, a.Imports.Start)

	funcs := a.Functions()
	require.Len(t, funcs, 3)
	assert.Equal(t, "render", funcs[0].Name)
	assert.Equal(t, "handler", funcs[1].Name)
	assert.Equal(t, "parse", funcs[2].Name)

	classes := a.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, "Store", classes[0].Name)
}

func TestAnalyze_Java(t *testing.T) {
	a := analyzeSource(t, "Main.java", `import java.util.List;

public class Main {
    public static void main(String[] args) {
    }

    private List<String> collect(int limit) {
        return null;
    }
}
`)

	classes := a.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, "Main", classes[0].Name)

	funcs := a.Functions()
	require.Len(t, funcs, 2)
	assert.Equal(t, "main", funcs[0].Name)
	assert.Equal(t, "collect", funcs[1].Name)

	require.NotNil(t, a.Imports)
	assert.Equal(t, 1, a.Imports.Start)
}

func TestAnalyze_BannersAreSections(t *testing.T) {
	a := analyzeSource(t, "mod.py", `# =====================
# HELPERS
# =====================
def helper():
    pass
`)

	sections := a.Sections()
	require.GreaterOrEqual(t, len(sections), 2)
	assert.Equal(t, 1, sections[0].Line)
}

func TestAnalyze_CommentsDoNotDeclare(t *testing.T) {
	a := analyzeSource(t, "app.js", `// function ghost() {}
function real() {}
`)

	funcs := a.Functions()
	require.Len(t, funcs, 1)
	assert.Equal(t, "real", funcs[0].Name)
	assert.Equal(t, 2, funcs[0].Line)
}

func TestAnalyze_GenericFallbackGaps(t *testing.T) {
	a := analyzeSource(t, "notes.conf", `first block line


second block starts here
still second block


third block
`)

	assert.Equal(t, 8, a.TotalLines)
	sections := a.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, 4, sections[0].Line)
	assert.Equal(t, 8, sections[1].Line)
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, err := newAnalyzer().Analyze(filepath.Join(t.TempDir(), "gone.py"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.py")
}
