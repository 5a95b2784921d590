package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/pgz"
	"github.com/rocketman768/GliderWeatherBot/raspdata"
)

//-----------------------------------------------------------------------------
// Helpers
//-----------------------------------------------------------------------------

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

// writeXC stores uniform hwcrit/wblmaxmin grids large enough for the
// default KCVH route at 1400 in dir.
func writeXC(t *testing.T, dir string, hcrit, vvert int32) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for param, v := range map[string]int32{classifier.ParamHcrit: hcrit, classifier.ParamVvert: vvert} {
		g, err := grid.Build(30, 90, func(int, int) int32 { return v })
		require.NoError(t, err)
		data, err := pgz.Encode(g)
		require.NoError(t, err)
		name := filepath.Join(dir, raspdata.FileName(param, 1400)+pgz.Ext)
		require.NoError(t, os.WriteFile(name, data, 0o644))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weatherbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

//-----------------------------------------------------------------------------
// Commands
//-----------------------------------------------------------------------------

func TestConvert_WritesPGZ(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, raspdata.FileName("hwcrit", 1400))
	require.NoError(t, os.WriteFile(name, []byte("---\ntitle\nmeta\nmeta\n1 2 3\n4 5 6\n"), 0o644))

	out, _, err := run(t, "convert", name)
	require.NoError(t, err)
	assert.Contains(t, out, "3x2 min 1 max 6")

	data, err := os.ReadFile(name + pgz.Ext)
	require.NoError(t, err)
	g, err := pgz.Decode(data)
	require.NoError(t, err)
	want, err := grid.FromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.True(t, want.Equal(g))
}

func TestConvert_BadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "broken.data")
	require.NoError(t, os.WriteFile(name, []byte("---\ntitle\nmeta\nmeta\n1 2\n3\n"), 0o644))

	_, _, err := run(t, "convert", name)
	require.ErrorIs(t, err, grid.ErrFormat)
}

func TestPath_PrintsRoute(t *testing.T) {
	dir := t.TempDir()
	writeXC(t, dir, 8000, 300)

	out, _, err := run(t, "path", "--dir", dir, "--time", "1400")
	require.NoError(t, err)
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "19  80")
	assert.Contains(t, out, "24  56")
	assert.Contains(t, out, "cost ")
}

func TestClassify_SkipsMissingDays(t *testing.T) {
	archive := t.TempDir()
	writeXC(t, filepath.Join(archive, "xc", "OUT+0"), 8000, 300)
	cfg := writeConfig(t, fmt.Sprintf("log_format: text\nsource:\n  archive_dir: %s\nxc:\n  lookahead: 2\n", archive))

	out, logs, err := run(t, "--config", cfg, "classify", "--kind", "xc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "xc")
	assert.Contains(t, lines[1], "+0")
	assert.Contains(t, logs, "skipping time slice")
	assert.Contains(t, logs, "day_offset=1")
}

func TestClassify_UnknownKind(t *testing.T) {
	_, _, err := run(t, "classify", "--kind", "thermal")
	require.ErrorIs(t, err, classifier.ErrUnknownKind)
}

func TestEvaluate_Dataset(t *testing.T) {
	root := t.TempDir()
	writeXC(t, filepath.Join(root, "good"), 12000, 800)
	writeXC(t, filepath.Join(root, "poor"), 2000, 50)
	dataset := filepath.Join(root, "dataset.json")
	require.NoError(t, os.WriteFile(dataset,
		[]byte(`{"positive": [["good", [1400]]], "negative": [["poor", [1400]]]}`), 0o644))

	out, _, err := run(t, "evaluate", "--kind", "xc", "--root", root, dataset)
	require.NoError(t, err)
	assert.Contains(t, out, "Feature mean:")
	assert.Contains(t, out, "TP ")
	assert.Contains(t, out, "Precision:")
	assert.Contains(t, out, "Weight:")
}

func TestEvaluate_MissingData(t *testing.T) {
	root := t.TempDir()
	dataset := filepath.Join(root, "dataset.json")
	require.NoError(t, os.WriteFile(dataset, []byte(`{"positive": [["nowhere", [1400]]], "negative": []}`), 0o644))

	_, _, err := run(t, "evaluate", "--root", root, dataset)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}
