package watchlist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/stretchr/testify/require"
)

// initTestDB points the package at a throwaway database. openDB memoizes
// the handle, so every test in this package shares one file.
func initTestDB(t *testing.T) {
	t.Helper()
	if engine.Cfg.WatchlistPath == "" {
		engine.Init(engine.Config{
			WatchlistPath: filepath.Join(t.TempDir(), "watchlist.db"),
		})
	}
}

func TestWatchlistCRUD(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	added, err := Add(ctx, AddInput{
		VideoID:      "dQw4w9WgXcQ",
		Title:        "Test Video",
		ChannelTitle: "Test Channel",
		Notes:        "check later",
	})
	require.NoError(t, err)
	require.Positive(t, added.ID)

	list, err := List(ctx, ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Entries, 1)

	e := list.Entries[0]
	require.Equal(t, "dQw4w9WgXcQ", e.VideoID)
	require.Equal(t, StatusQueued, e.Status)
	require.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", e.URL)

	_, err = Update(ctx, UpdateInput{ID: added.ID, Status: "watched", Notes: "great"})
	require.NoError(t, err)

	list, err = List(ctx, ListInput{Status: "watched"})
	require.NoError(t, err)
	require.Len(t, list.Entries, 1)
	require.Equal(t, "great", list.Entries[0].Notes)

	list, err = List(ctx, ListInput{Status: "queued"})
	require.NoError(t, err)
	require.Empty(t, list.Entries)

	_, err = Remove(ctx, added.ID)
	require.NoError(t, err)

	list, err = List(ctx, ListInput{})
	require.NoError(t, err)
	require.Empty(t, list.Entries)
}

func TestWatchlistValidation(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	_, err := Add(ctx, AddInput{Title: "no id"})
	require.Error(t, err)

	_, err = Add(ctx, AddInput{VideoID: "dQw4w9WgXcQ", Title: "x", Status: "binged"})
	require.Error(t, err)

	_, err = List(ctx, ListInput{Status: "binged"})
	require.Error(t, err)

	_, err = Update(ctx, UpdateInput{ID: 0, Status: "watched"})
	require.Error(t, err)

	_, err = Update(ctx, UpdateInput{ID: 1})
	require.Error(t, err)

	_, err = Remove(ctx, 999999)
	require.Error(t, err)
}
