package dto

import "mime/multipart"

// GalleryUploadInput — данные формы загрузки медиафайла.
// Categories приходит JSON-строкой вида ["nature","city"].
type GalleryUploadInput struct {
	File       *multipart.FileHeader `json:"-" form:"file"`
	Alt        string                `json:"alt" form:"alt" validate:"omitempty,max=255"`
	Categories string                `json:"categories" form:"categories"`
	DateGroup  string                `json:"dateGroup" form:"dateGroup" validate:"omitempty,max=64"`
}

type FavoriteResponse struct {
	ID         string `json:"id"`
	IsFavorite bool   `json:"isFavorite"`
}

type DeleteResponse struct {
	ID string `json:"id"`
}
