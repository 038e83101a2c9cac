package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	storage "media_gallery/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestSaveAndDelete(t *testing.T) {
	baseDir := t.TempDir()

	fs, err := storage.NewLocalFileStorage(baseDir, "/uploads")
	require.NoError(t, err)

	file := createTestFile(t, "photo.jpg", "jpeg bytes")

	publicPath, size, err := fs.Save(context.Background(), file, "upl-1-abc.jpg")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/upl-1-abc.jpg", publicPath)
	assert.Equal(t, int64(len("jpeg bytes")), size)

	onDisk := filepath.Join(baseDir, "upl-1-abc.jpg")
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, fs.Delete(context.Background(), publicPath))

	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestOwns(t *testing.T) {
	fs, err := storage.NewLocalFileStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.True(t, fs.Owns("/uploads/upl-1-abc.jpg"))
	assert.False(t, fs.Owns("https://images.unsplash.com/photo.jpg"))
	assert.False(t, fs.Owns("/static/logo.png"))
}

func TestDelete_OutsideStorage(t *testing.T) {
	fs, err := storage.NewLocalFileStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	err = fs.Delete(context.Background(), "https://images.unsplash.com/photo.jpg")
	require.Error(t, err)
}

func TestNewLocalFileStorage_CreatesDir(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := storage.NewLocalFileStorage(baseDir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(baseDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
