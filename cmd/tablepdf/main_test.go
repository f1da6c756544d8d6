package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `
columns:
  - {name: Date, width: 100}
  - {name: Amount, width: 80}
rows:
  - ["2024-01-02", 12.5]
  - ["2024-01-03", 7]
report: {from: "2024-01-01", to: "2024-01-31", sum: 19.5}
`

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "expenses.yaml")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	require.NoError(t, run(t, "render", "-i", in, "-o", filepath.Join(dir, "out", "january"), "--landscape"))
	assert.FileExists(t, filepath.Join(dir, "out", "january.pdf"))

	require.NoError(t, run(t, "render", "-i", in, "-o", filepath.Join(dir, "preview"), "--format", "svg"))
	assert.FileExists(t, filepath.Join(dir, "preview.svg"))

	assert.Error(t, run(t, "render", "-o", filepath.Join(dir, "x")), "--input is required")
	assert.Error(t, run(t, "render", "-i", in, "--landscape", "--portrait"))
}

func TestOutputFiles(t *testing.T) {
	assert.Equal(t, []string{"out/r.pdf"}, outputFiles("pdf", "out/r.pdf", 3))
	assert.Equal(t, []string{"out/r.svg"}, outputFiles("svg", "out/r.svg", 1))
	assert.Equal(t, []string{"out/r-p1.svg", "out/r-p2.svg"}, outputFiles("SVG", "out/r.svg", 2))
}

func TestPlanCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "expenses.yaml")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	out := filepath.Join(dir, "plan.json")
	require.NoError(t, run(t, "plan", "-i", in, "--json", "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rows": 2`)
	assert.Contains(t, string(data), `"rows_per_page": 39`)
}

func TestVersion(t *testing.T) {
	assert.Contains(t, getVersionInfo(), "tablepdf dev")
}
