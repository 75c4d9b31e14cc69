package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harrison/minigrep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger_CreatesRunLogAndSymlink(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "nested", "logs")

	fl, err := NewFileLogger(logDir, "info", "run-1234")
	require.NoError(t, err)
	defer fl.Close()

	assert.Regexp(t, `run-\d{8}-\d{6}\.log$`, fl.Path())

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(fl.Path()), target)

	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== minigrep run log ===")
	assert.Contains(t, string(data), "Run ID: run-1234")
}

func TestNewFileLogger_ReplacesExistingSymlink(t *testing.T) {
	logDir := t.TempDir()
	require.NoError(t, os.Symlink("stale.log", filepath.Join(logDir, "latest.log")))

	fl, err := NewFileLogger(logDir, "info", "")
	require.NoError(t, err)
	defer fl.Close()

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(fl.Path()), target)
}

func TestNewFileLogger_UnwritableDir(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, 0644))

	_, err := NewFileLogger(filepath.Join(parent, "logs"), "info", "")
	assert.Error(t, err)
}

func TestFileLogger_LevelsAndSummary(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "warn", "")
	require.NoError(t, err)

	fl.LogDebug("debug line")
	fl.LogInfo("info line")
	fl.LogWarn("cannot open directory /x")
	fl.LogError("error line")
	fl.LogRunComplete(models.RunSummary{Stats: models.Stats{Scanned: 9}})
	require.NoError(t, fl.Close())

	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "[WARN] cannot open directory /x")
	assert.Contains(t, out, "[ERROR] error line")
	assert.NotContains(t, out, "=== Summary ===", "summary is info-level")
}

func TestFileLogger_RunSummary(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "info", "abc")
	require.NoError(t, err)

	fl.LogRunStart("/data", "TODO", 8)
	fl.LogRunComplete(models.RunSummary{
		Stats:   models.Stats{Scanned: 10, Matched: 4, Lines: 7, Skipped: 1},
		Elapsed: 1500 * time.Millisecond,
	})
	require.NoError(t, fl.Close())

	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `Searching /data for "TODO" with 8 workers`)
	assert.Contains(t, out, "Scanned files: 10")
	assert.Contains(t, out, "Matched files: 4")
	assert.Contains(t, out, "Matching lines: 7")
	assert.Contains(t, out, "Skipped files: 1")
	assert.Contains(t, out, "Duration: 1.500s")
}

func TestFileLogger_WritesAfterCloseAreDropped(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "info", "")
	require.NoError(t, err)
	require.NoError(t, fl.Close())

	assert.NotPanics(t, func() { fl.LogInfo("late") })
	assert.NoError(t, fl.Close())
}
