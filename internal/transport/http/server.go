package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"media_gallery/internal/domain/models"
	"media_gallery/internal/lib/logger/sl"
	media "media_gallery/internal/services/media_service"
	"media_gallery/internal/storage"
	"media_gallery/internal/transport/http/dto"
	"media_gallery/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

type GalleryService interface {
	ListGrouped(ctx context.Context) ([]models.GalleryGroup, error)
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	Remove(ctx context.Context, id string) error
}

type MediaService interface {
	UploadMedia(ctx context.Context, input dto.GalleryUploadInput) (models.GalleryItem, error)
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
	MediaService   MediaService
}

func NewRouter(log *slog.Logger, galleryService GalleryService, mediaService MediaService) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
		MediaService:   mediaService,
	}
}

// GetGallery отдаёт все элементы галереи, сгруппированные по датам.
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	groups, err := r.GalleryService.ListGrouped(c.Request().Context())
	if err != nil {
		log.Error("failed to list gallery", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	if groups == nil {
		groups = []models.GalleryGroup{}
	}

	return c.JSON(http.StatusOK, groups)
}

// UploadItem принимает multipart-файл с полями alt, categories, dateGroup
// и создаёт новый элемент галереи.
func (r *Routers) UploadItem(c echo.Context) error {
	const op = "http.routers.UploadItem"

	log := r.log.With(
		slog.String("op", op),
	)

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrFileRequired)
	}

	input := dto.GalleryUploadInput{
		File:       file,
		Alt:        c.FormValue("alt"),
		Categories: c.FormValue("categories"),
		DateGroup:  c.FormValue("dateGroup"),
	}

	if err := c.Validate(input); err != nil {
		log.Warn("invalid upload input", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	item, err := r.MediaService.UploadMedia(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, media.ErrNoFile) {
			return c.JSON(http.StatusBadRequest, response.ErrFileRequired)
		}

		log.Error("failed to upload media", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, item)
}

// ToggleFavorite переключает флаг избранного у элемента.
func (r *Routers) ToggleFavorite(c echo.Context) error {
	const op = "http.routers.ToggleFavorite"

	log := r.log.With(
		slog.String("op", op),
		slog.String("item_id", c.Param("id")),
	)

	id := c.Param("id")

	isFavorite, err := r.GalleryService.ToggleFavorite(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			log.Warn("item not found")
			return c.JSON(http.StatusNotFound, response.ErrItemNotFound)
		}

		log.Error("failed to toggle favorite", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, dto.FavoriteResponse{
		ID:         id,
		IsFavorite: isFavorite,
	})
}

// DeleteItem удаляет элемент галереи; файл, загруженный через нас,
// убирается с диска в фоне.
func (r *Routers) DeleteItem(c echo.Context) error {
	const op = "http.routers.DeleteItem"

	log := r.log.With(
		slog.String("op", op),
		slog.String("item_id", c.Param("id")),
	)

	id := c.Param("id")

	if err := r.GalleryService.Remove(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			log.Warn("item not found")
			return c.JSON(http.StatusNotFound, response.ErrItemNotFound)
		}

		log.Error("failed to delete item", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{ID: id})
}

func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
