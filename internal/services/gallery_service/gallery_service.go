package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"media_gallery/internal/domain/models"
	"media_gallery/internal/lib/logger/sl"
	"media_gallery/internal/repository"
	storage "media_gallery/internal/storage/filestorage"
)

// dateGroupLayout — формат меток вида "May 1, 2025".
const dateGroupLayout = "January 2, 2006"

type GalleryService struct {
	log         *slog.Logger
	repo        repository.GalleryRepository
	fileStorage storage.FileStorage
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, fileStorage storage.FileStorage) *GalleryService {
	return &GalleryService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
	}
}

// ListGrouped возвращает все элементы галереи, собранные по датам,
// свежие группы первыми.
func (s *GalleryService) ListGrouped(ctx context.Context) ([]models.GalleryGroup, error) {
	const op = "gallery_service.ListGrouped"

	items, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list gallery items", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return GroupByDate(items), nil
}

// ToggleFavorite переключает флаг избранного и возвращает новое значение.
func (s *GalleryService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	const op = "gallery_service.ToggleFavorite"

	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", id),
	)

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	newValue := !item.IsFavorite
	if err := s.repo.SetFavorite(ctx, id, newValue); err != nil {
		log.Error("failed to set favorite", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("favorite toggled", slog.Bool("is_favorite", newValue))
	return newValue, nil
}

// Remove удаляет запись из базы. Если медиафайл хранится у нас,
// его физическое удаление уходит в фон и на ответ не влияет:
// запись — источник истины, осиротевший файл — не фатальная утечка.
func (s *GalleryService) Remove(ctx context.Context, id string) error {
	const op = "gallery_service.Remove"

	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", id),
	)

	src, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery item deleted")

	if s.fileStorage.Owns(src) {
		go func(src string) {
			if err := s.fileStorage.Delete(context.Background(), src); err != nil {
				log.Warn("failed to remove media file", slog.String("src", src), sl.Err(err))
			}
		}(src)
	}

	return nil
}

// GroupByDate собирает плоский список в группы по dateGroup.
// Порядок элементов внутри группы — порядок входа; группы сортируются
// по дате по убыванию. Метки, не разобравшиеся как дата, уходят в конец,
// взаимный порядок таких групп стабилен.
func GroupByDate(items []models.GalleryItem) []models.GalleryGroup {
	var groups []models.GalleryGroup
	index := make(map[string]int)

	for _, item := range items {
		i, ok := index[item.DateGroup]
		if !ok {
			i = len(groups)
			index[item.DateGroup] = i
			groups = append(groups, models.GalleryGroup{
				ID:   dateSlug(item.DateGroup),
				Date: item.DateGroup,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	type datedGroup struct {
		group models.GalleryGroup
		date  time.Time
		ok    bool
	}
	dated := make([]datedGroup, len(groups))
	for i, g := range groups {
		t, err := time.Parse(dateGroupLayout, g.Date)
		dated[i] = datedGroup{group: g, date: t, ok: err == nil}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		switch {
		case dated[i].ok && dated[j].ok:
			return dated[i].date.After(dated[j].date)
		case dated[i].ok:
			return true
		default:
			return false
		}
	})

	for i, d := range dated {
		groups[i] = d.group
	}
	return groups
}

func dateSlug(label string) string {
	slug := strings.ToLower(label)
	slug = strings.NewReplacer(",", "", " ", "-").Replace(slug)
	return slug
}
