package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileStorage интерфейс для работы с файловым хранилищем загрузок
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, storedName string) (publicPath string, size int64, err error)
	Delete(ctx context.Context, publicPath string) error
	// Owns сообщает, лежит ли путь в нашем хранилище. Внешние URL
	// (https://...) системе не принадлежат и при удалении записи не трогаются.
	Owns(publicPath string) bool
	BaseURL() string
	BaseDir() string
}

// LocalFileStorage реализация для локальной файловой системы
type LocalFileStorage struct {
	baseDir string // каталог для хранения, например "./uploads"
	baseURL string // публичный префикс, например "/uploads"
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, storedName string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	filePath := filepath.Join(s.baseDir, storedName)

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(filePath)
		return "", 0, fmt.Errorf("failed to copy file: %w", err)
	}

	return path.Join(s.baseURL, storedName), size, nil
}

// Delete удаляет файл из хранилища по его публичному пути
func (s *LocalFileStorage) Delete(ctx context.Context, publicPath string) error {
	if !s.Owns(publicPath) {
		return fmt.Errorf("path %q is outside storage", publicPath)
	}

	name := strings.TrimPrefix(publicPath, s.baseURL+"/")
	fullPath := filepath.Join(s.baseDir, filepath.Base(name))

	return os.Remove(fullPath)
}

func (s *LocalFileStorage) Owns(publicPath string) bool {
	return strings.HasPrefix(publicPath, s.baseURL+"/")
}

// BaseURL возвращает публичный префикс для доступа к файлам
func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) BaseDir() string {
	return s.baseDir
}
