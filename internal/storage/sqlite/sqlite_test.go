package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"media_gallery/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "gallery_test.db")

	store, err := sqlite.New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Stop())
	})

	return store
}

func countItems(t *testing.T, store *sqlite.Storage) int {
	t.Helper()

	var count int
	err := store.DB().QueryRowContext(context.Background(), "SELECT COUNT(*) FROM gallery_items").Scan(&count)
	require.NoError(t, err)

	return count
}

func TestInit_SeedsEmptyStore(t *testing.T) {
	store := setupStorage(t)

	require.NoError(t, store.Init(context.Background()))

	assert.Equal(t, 17, countItems(t, store))
}

func TestInit_Idempotent(t *testing.T) {
	store := setupStorage(t)

	require.NoError(t, store.Init(context.Background()))
	require.NoError(t, store.Init(context.Background()))

	assert.Equal(t, 17, countItems(t, store))
}

func TestInit_DoesNotReseedAfterDelete(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx))

	_, err := store.DB().ExecContext(ctx, "DELETE FROM gallery_items WHERE id = ?", "img-002")
	require.NoError(t, err)

	require.NoError(t, store.Init(ctx))

	// Непустая таблица не досеивается.
	assert.Equal(t, 16, countItems(t, store))
}

func TestInit_SeedContent(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx))

	var (
		mediaType  string
		categories string
	)
	err := store.DB().QueryRowContext(ctx,
		"SELECT type, categories FROM gallery_items WHERE id = ?", "img-001",
	).Scan(&mediaType, &categories)
	require.NoError(t, err)

	assert.Equal(t, "image", mediaType)
	assert.JSONEq(t, `["library","nature","landscape"]`, categories)
}
