package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"media_gallery/internal/domain/models"
	"media_gallery/internal/repository"
	"media_gallery/internal/storage"
	"media_gallery/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCtx = context.Background()

func setupRepo(t *testing.T) *repository.GalleryRepo {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "gallery_test.db")

	store, err := sqlite.New(testCtx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Init(testCtx))

	t.Cleanup(func() {
		require.NoError(t, store.Stop())
	})

	return repository.NewGalleryRepository(store.DB())
}

func TestListAll_ReturnsSeed(t *testing.T) {
	repo := setupRepo(t)

	items, err := repo.ListAll(testCtx)
	require.NoError(t, err)
	require.Len(t, items, 17)

	var found *models.GalleryItem
	for i := range items {
		if items[i].ID == "img-001" {
			found = &items[i]
			break
		}
	}

	require.NotNil(t, found, "seed must contain img-001")
	assert.Equal(t, models.MediaTypeImage, found.Type)
	assert.Equal(t, models.Categories{"library", "nature", "landscape"}, found.Categories)
	assert.False(t, found.IsFavorite)
	assert.Equal(t, "May 1, 2025", found.DateGroup)
}

func TestInsert_And_GetByID(t *testing.T) {
	repo := setupRepo(t)

	poster := "https://example.com/poster.jpg"
	item := models.GalleryItem{
		ID:         "vid-100",
		Type:       models.MediaTypeVideo,
		Src:        "/uploads/vid-100.mp4",
		Alt:        "test clip",
		Poster:     &poster,
		IsFavorite: false,
		DateGroup:  "June 10, 2025",
		Categories: models.Categories{"test", "clips"},
	}

	require.NoError(t, repo.Insert(testCtx, item))

	got, err := repo.GetByID(testCtx, "vid-100")
	require.NoError(t, err)

	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Type, got.Type)
	assert.Equal(t, item.Src, got.Src)
	assert.Equal(t, item.Alt, got.Alt)
	require.NotNil(t, got.Poster)
	assert.Equal(t, poster, *got.Poster)
	assert.Equal(t, item.DateGroup, got.DateGroup)
	assert.Equal(t, item.Categories, got.Categories)
}

func TestInsert_EmptyCategories(t *testing.T) {
	repo := setupRepo(t)

	item := models.GalleryItem{
		ID:         "img-100",
		Type:       models.MediaTypeImage,
		Src:        "/uploads/img-100.jpg",
		DateGroup:  "June 10, 2025",
		Categories: models.Categories{},
	}

	require.NoError(t, repo.Insert(testCtx, item))

	got, err := repo.GetByID(testCtx, "img-100")
	require.NoError(t, err)

	assert.Equal(t, models.Categories{}, got.Categories)
	assert.Nil(t, got.Poster)
}

func TestInsert_DuplicateID(t *testing.T) {
	repo := setupRepo(t)

	item := models.GalleryItem{
		ID:        "img-001",
		Type:      models.MediaTypeImage,
		Src:       "/uploads/dup.jpg",
		DateGroup: "June 10, 2025",
	}

	// Уникальность id обеспечивает первичный ключ.
	err := repo.Insert(testCtx, item)
	require.Error(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(testCtx, "does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestSetFavorite_Toggle(t *testing.T) {
	repo := setupRepo(t)

	item, err := repo.GetByID(testCtx, "img-001")
	require.NoError(t, err)
	require.False(t, item.IsFavorite)

	require.NoError(t, repo.SetFavorite(testCtx, "img-001", true))

	item, err = repo.GetByID(testCtx, "img-001")
	require.NoError(t, err)
	assert.True(t, item.IsFavorite)

	require.NoError(t, repo.SetFavorite(testCtx, "img-001", false))

	item, err = repo.GetByID(testCtx, "img-001")
	require.NoError(t, err)
	assert.False(t, item.IsFavorite)
}

func TestSetFavorite_NotFound(t *testing.T) {
	repo := setupRepo(t)

	err := repo.SetFavorite(testCtx, "does-not-exist", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)

	src, err := repo.Delete(testCtx, "img-002")
	require.NoError(t, err)
	assert.NotEmpty(t, src)

	_, err = repo.GetByID(testCtx, "img-002")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// Повторное удаление — тоже NotFound, без паники.
	_, err = repo.Delete(testCtx, "img-002")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}
