package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"media_gallery/internal/domain/models"
	"media_gallery/internal/storage"

	sq "github.com/Masterminds/squirrel"
)

const galleryTable = "gallery_items"

type GalleryRepo struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *sql.DB) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *GalleryRepo) ListAll(ctx context.Context) ([]models.GalleryItem, error) {
	const op = "repository.gallery_repository.ListAll"

	query, args, err := r.sb.
		Select("id", "type", "src", "alt", "poster", "is_favorite", "date_group", "categories").
		From(galleryTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return items, nil
}

func (r *GalleryRepo) Insert(ctx context.Context, item models.GalleryItem) error {
	const op = "repository.gallery_repository.Insert"

	query, args, err := r.sb.Insert(galleryTable).
		Columns("id", "type", "src", "alt", "poster", "is_favorite", "date_group", "categories").
		Values(
			item.ID,
			item.Type,
			item.Src,
			item.Alt,
			item.Poster,
			boolToInt(item.IsFavorite),
			item.DateGroup,
			item.Categories,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to insert item: %w", op, err)
	}

	return nil
}

func (r *GalleryRepo) GetByID(ctx context.Context, id string) (models.GalleryItem, error) {
	const op = "repository.gallery_repository.GetByID"

	query, args, err := r.sb.
		Select("id", "type", "src", "alt", "poster", "is_favorite", "date_group", "categories").
		From(galleryTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GalleryItem{}, fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
		}
		return models.GalleryItem{}, fmt.Errorf("%s: failed to get item: %w", op, err)
	}

	return item, nil
}

func (r *GalleryRepo) SetFavorite(ctx context.Context, id string, isFavorite bool) error {
	const op = "repository.gallery_repository.SetFavorite"

	query, args, err := r.sb.Update(galleryTable).
		Set("is_favorite", boolToInt(isFavorite)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to update item: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
	}

	return nil
}

func (r *GalleryRepo) Delete(ctx context.Context, id string) (string, error) {
	const op = "repository.gallery_repository.Delete"

	item, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Delete(galleryTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("%s: failed to delete item: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("%s: rows affected: %w", op, err)
	}
	// Запись могла исчезнуть между чтением и удалением.
	if affected == 0 {
		return "", fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
	}

	return item.Src, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (models.GalleryItem, error) {
	var (
		item       models.GalleryItem
		alt        sql.NullString
		poster     sql.NullString
		isFavorite int
	)

	err := row.Scan(
		&item.ID,
		&item.Type,
		&item.Src,
		&alt,
		&poster,
		&isFavorite,
		&item.DateGroup,
		&item.Categories,
	)
	if err != nil {
		return models.GalleryItem{}, err
	}

	item.Alt = alt.String
	if poster.Valid {
		item.Poster = &poster.String
	}
	item.IsFavorite = isFavorite != 0

	return item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
