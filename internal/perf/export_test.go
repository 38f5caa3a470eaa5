package perf

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportToFileWritesJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	baseDir := filepath.FromSlash("/work")

	spans := []SpanSnapshot{
		{
			Name:       "io.profile.read",
			TraceID:    "trace",
			SpanID:     "span",
			StartTime:  start,
			EndTime:    start.Add(time.Millisecond),
			Attributes: map[string]interface{}{"path": filepath.Join(baseDir, "coverage_new.out"), "lines": int64(4)},
			Events: []EventSnapshot{
				{Name: "tui.report.exit", Timestamp: start},
			},
		},
	}

	path, err := ExportToFile(fs, filepath.Join(baseDir, "perf"), baseDir, spans)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(baseDir, "perf", "covstat-perf.json"), path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var exported []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "io.profile.read", exported[0]["name"])
	assert.Equal(t, float64(time.Millisecond.Nanoseconds()), exported[0]["duration_ns"])

	attributes := exported[0]["attributes"].(map[string]interface{})
	assert.Equal(t, "coverage_new.out", attributes["path"])
	assert.Equal(t, float64(4), attributes["lines"])
	assert.Len(t, exported[0]["events"], 1)
}

func TestExportToFileDefaultsToCurrentDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()

	path, err := ExportToFile(fs, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "covstat-perf.json", path)

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExportToFileReadOnlyFsErrors(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := ExportToFile(fs, "out", "", nil)
	assert.Error(t, err)
}

func TestNormalizeValue(t *testing.T) {
	baseDir := filepath.FromSlash("/work")

	assert.Equal(t, "sub/file.out", normalizeValue("profile_path", filepath.Join(baseDir, "sub", "file.out"), baseDir))
	assert.Equal(t, "file.out", normalizeValue("path", "./file.out", ""))
	assert.Equal(t, ".", normalizeValue("path", ".", baseDir))
	assert.Equal(t, "./keep", normalizeValue("name", "./keep", baseDir))
	assert.Equal(t, 3, normalizeValue("path", 3, baseDir))
}
