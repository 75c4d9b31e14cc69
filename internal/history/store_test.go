package history

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/harrison/minigrep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(id string, started time.Time) models.RunSummary {
	return models.RunSummary{
		ID:        id,
		Root:      "/src",
		Keyword:   "TODO",
		Workers:   8,
		Stats:     models.Stats{Scanned: 10, Matched: 3, Lines: 5, Skipped: 1},
		StartedAt: started,
		Elapsed:   1500 * time.Millisecond,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "sub", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := NewStore("")
		assert.ErrorIs(t, err, ErrNoDatabase)
	})

	t.Run("in memory", func(t *testing.T) {
		store, err := NewStore(":memory:")
		require.NoError(t, err)
		defer store.Close()

		n, err := store.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("reopen keeps runs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.db")
		store, err := NewStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Record(context.Background(), run("a", time.Now())))
		require.NoError(t, store.Close())

		reopened, err := NewStore(path)
		require.NoError(t, err)
		defer reopened.Close()
		assert.Equal(t, path, reopened.Path())

		n, err := reopened.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestStore_RecordAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, run("first", base)))
	require.NoError(t, store.Record(ctx, run("third", base.Add(2*time.Hour))))
	require.NoError(t, store.Record(ctx, run("second", base.Add(time.Hour))))

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "third", runs[0].ID)
	assert.Equal(t, "second", runs[1].ID)
	assert.Equal(t, "first", runs[2].ID)

	got := runs[2]
	assert.Equal(t, "/src", got.Root)
	assert.Equal(t, "TODO", got.Keyword)
	assert.Equal(t, 8, got.Workers)
	assert.Equal(t, models.Stats{Scanned: 10, Matched: 3, Lines: 5, Skipped: 1}, got.Stats)
	assert.Equal(t, 1500*time.Millisecond, got.Elapsed)
	assert.True(t, base.Equal(got.StartedAt), "started_at = %v", got.StartedAt)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "third", limited[0].ID)
}

func TestStore_RecordRejectsDuplicatesAndMissingID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Record(ctx, run("dup", time.Now())))
	assert.Error(t, store.Record(ctx, run("dup", time.Now())))
	assert.Error(t, store.Record(ctx, run("", time.Now())))
}

func TestStore_ConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := time.Duration(i).String()
			assert.NoError(t, store.Record(ctx, run(id, time.Now())))
		}(i)
	}
	wg.Wait()

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}
