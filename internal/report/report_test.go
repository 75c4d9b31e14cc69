package report

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/harrison/minigrep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() models.RunSummary {
	return models.RunSummary{
		ID:        "7d9f4c1e-0000-4000-8000-000000000001",
		Root:      "/src",
		Keyword:   "TODO",
		Workers:   8,
		Stats:     models.Stats{Scanned: 120, Matched: 7, Lines: 19, Skipped: 2},
		StartedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		Elapsed:   1250 * time.Millisecond,
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.json", FormatJSON, false},
		{"dir/out.JSON", FormatJSON, false},
		{"out.yaml", FormatYAML, false},
		{"out.yml", FormatYAML, false},
		{"out.txt", "", true},
		{"out", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestWriteAndRead(t *testing.T) {
	for _, name := range []string{"report.json", "report.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			want := New(sampleSummary(), []string{"/src/locked"})

			require.NoError(t, want.Write(path))

			got, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Stats, got.Stats)
			assert.Equal(t, 1.25, got.ElapsedSeconds)
			assert.True(t, want.StartedAt.Equal(got.StartedAt))
			assert.Equal(t, []string{"/src/locked"}, got.UnreadableDirs)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
		})
	}
}

func TestWrite_JSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, New(sampleSummary(), nil).Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"keyword": "TODO"`)
	assert.Contains(t, string(data), `"scanned": 120`)
	assert.NotContains(t, string(data), "unreadable_dirs")
}

func TestWrite_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.csv")
	assert.Error(t, New(sampleSummary(), nil).Write(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWrite_ReplacesExistingAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0600))

	require.NoError(t, New(sampleSummary(), nil).Write(path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "TODO", got.Keyword)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotRegexp(t, `^\.report-`, e.Name(), "temp file left behind")
	}
}

func TestWrite_WaitsForLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.yaml")

	held := flock.New(path + ".lock")
	require.NoError(t, held.Lock())

	done := make(chan error, 1)
	go func() { done <- New(sampleSummary(), nil).Write(path) }()

	select {
	case err := <-done:
		t.Fatalf("write finished while lock was held: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, held.Unlock())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("write did not finish after lock release")
	}
}

func TestWrite_ConcurrentWritersProduceValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := sampleSummary()
			s.Workers = i + 1
			assert.NoError(t, New(s, nil).Write(path))
		}(i)
	}
	wg.Wait()

	got, err := Read(path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Workers, 1)
	assert.LessOrEqual(t, got.Workers, 10)
}

func TestWrite_FailedRenameCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.json")
	// A non-empty directory at the target makes the final rename fail after
	// the temp file has been written and closed.
	require.NoError(t, os.MkdirAll(filepath.Join(path, "keep"), 0755))

	err := New(sampleSummary(), nil).Write(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to rename temp file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotRegexp(t, `^\.report-`, e.Name(), "temp file left behind")
	}

	info, err := os.Stat(filepath.Join(path, "keep"))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "existing target untouched")
}
