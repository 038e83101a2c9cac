package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaTypeFromMime выводит тип медиа из MIME-типа загруженного файла.
// Всё, что не image/*, считается видео.
func MediaTypeFromMime(mimeType string) MediaType {
	if strings.HasPrefix(mimeType, "image/") {
		return MediaTypeImage
	}
	return MediaTypeVideo
}

// Categories — упорядоченный список категорий элемента галереи.
// В БД хранится одной JSON-строкой, порядок элементов сохраняется.
type Categories []string

// GalleryItem представляет один медиафайл галереи
type GalleryItem struct {
	ID         string     `json:"id" db:"id"`
	Type       MediaType  `json:"type" db:"type"`
	Src        string     `json:"src" db:"src"`
	Alt        string     `json:"alt,omitempty" db:"alt"`
	Poster     *string    `json:"poster,omitempty" db:"poster"`
	IsFavorite bool       `json:"isFavorite" db:"is_favorite"`
	DateGroup  string     `json:"dateGroup" db:"date_group"`
	Categories Categories `json:"categories" db:"categories"`
}

// GalleryGroup — элементы галереи, собранные под одной датой
type GalleryGroup struct {
	ID    string        `json:"id"`
	Date  string        `json:"date"`
	Items []GalleryItem `json:"items"`
}

// Value реализует интерфейс driver.Valuer для сериализации Categories в TEXT
func (c Categories) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(c))
	if err != nil {
		return nil, fmt.Errorf("marshal categories: %w", err)
	}
	return string(b), nil
}

// Scan реализует интерфейс sql.Scanner для десериализации TEXT в Categories.
// NULL и пустая строка дают пустой список, а не ошибку.
func (c *Categories) Scan(value interface{}) error {
	if value == nil {
		*c = Categories{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported categories column type %T", value)
	}

	if len(raw) == 0 {
		*c = Categories{}
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("unmarshal categories: %w", err)
	}
	if parsed == nil {
		parsed = []string{}
	}

	*c = Categories(parsed)
	return nil
}

// ParseCategories разбирает JSON-строку категорий из формы загрузки.
// Некорректный JSON не считается ошибкой: возвращается пустой список.
func ParseCategories(raw string) Categories {
	if raw == "" {
		return Categories{}
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed == nil {
		return Categories{}
	}

	return Categories(parsed)
}
