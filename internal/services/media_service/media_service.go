package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"media_gallery/internal/domain/models"
	"media_gallery/internal/lib/logger/sl"
	"media_gallery/internal/repository"
	storage "media_gallery/internal/storage/filestorage"
	"media_gallery/internal/transport/http/dto"

	"github.com/google/uuid"
)

// ErrNoFile — в запросе на загрузку нет файла; база не трогается.
var ErrNoFile = errors.New("file is required")

const dateGroupLayout = "January 2, 2006"

type MediaService struct {
	log         *slog.Logger
	repo        repository.GalleryRepository
	fileStorage storage.FileStorage
}

func NewMediaService(log *slog.Logger, repo repository.GalleryRepository, fileStorage storage.FileStorage) *MediaService {
	return &MediaService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
	}
}

// UploadMedia сохраняет файл в хранилище и создаёт запись галереи.
func (s *MediaService) UploadMedia(ctx context.Context, input dto.GalleryUploadInput) (models.GalleryItem, error) {
	const op = "media_service.UploadMedia"

	log := s.log.With(
		slog.String("op", op),
	)

	if input.File == nil {
		log.Warn("upload without file payload")
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, ErrNoFile)
	}

	log.Info("upload media",
		slog.String("filename", input.File.Filename),
		slog.Int64("size", input.File.Size),
	)

	id := newUploadID()
	storedName := id + strings.ToLower(filepath.Ext(input.File.Filename))

	src, size, err := s.fileStorage.Save(ctx, input.File, storedName)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	mimeType := input.File.Header.Get("Content-Type")

	alt := input.Alt
	if alt == "" {
		alt = input.File.Filename
	}

	dateGroup := input.DateGroup
	if dateGroup == "" {
		dateGroup = time.Now().Format(dateGroupLayout)
	}

	item := models.GalleryItem{
		ID:         id,
		Type:       models.MediaTypeFromMime(mimeType),
		Src:        src,
		Alt:        alt,
		Poster:     nil,
		IsFavorite: false,
		DateGroup:  dateGroup,
		Categories: models.ParseCategories(input.Categories),
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		// Не оставляем файл без записи.
		_ = s.fileStorage.Delete(ctx, src)
		log.Error("failed to save item to database", sl.Err(err))
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("upload successful",
		slog.String("item_id", item.ID),
		slog.String("type", string(item.Type)),
		slog.Int64("file_size", size),
	)

	return item, nil
}

// newUploadID даёт уникальный в пределах процесса идентификатор:
// миллисекунды + случайный суффикс.
func newUploadID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("upl-%d-%s", time.Now().UnixMilli(), suffix)
}
