package repository

import (
	"context"

	"media_gallery/internal/domain/models"
)

type GalleryRepository interface {
	ListAll(ctx context.Context) ([]models.GalleryItem, error)
	Insert(ctx context.Context, item models.GalleryItem) error
	GetByID(ctx context.Context, id string) (models.GalleryItem, error)
	SetFavorite(ctx context.Context, id string, isFavorite bool) error
	// Delete удаляет запись и возвращает её src, чтобы вызывающая
	// сторона решила, надо ли убирать файл с диска.
	Delete(ctx context.Context, id string) (string, error)
}
