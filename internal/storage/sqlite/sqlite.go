package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	_ "modernc.org/sqlite"
)

// Storage держит соединение с базой галереи.
type Storage struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS gallery_items (
	id          TEXT PRIMARY KEY,
	type        TEXT NOT NULL,
	src         TEXT NOT NULL,
	alt         TEXT,
	poster      TEXT,
	is_favorite INTEGER NOT NULL DEFAULT 0,
	date_group  TEXT NOT NULL,
	categories  TEXT NOT NULL DEFAULT '[]'
)`

// New открывает (или создаёт) файл базы по указанному пути и настраивает
// соединение: WAL, foreign keys, один открытый коннект для SQLite.
func New(ctx context.Context, storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: enable WAL mode: %w", op, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: enable foreign keys: %w", op, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: ping database: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Init создаёт схему и, если таблица пуста, заливает стартовый набор
// галереи. Повторный вызов на непустой базе ничего не досеивает.
func (s *Storage) Init(ctx context.Context) error {
	const op = "storage.sqlite.Init"

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: create schema: %w", op, err)
	}

	if err := s.seedIfEmpty(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM gallery_items").Scan(&count); err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	sb := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	for _, item := range seedItems {
		query, args, err := sb.Insert("gallery_items").
			Columns("id", "type", "src", "alt", "poster", "is_favorite", "date_group", "categories").
			Values(item.ID, item.Type, item.Src, item.Alt, item.Poster, boolToInt(item.IsFavorite), item.DateGroup, item.Categories).
			ToSql()
		if err != nil {
			return fmt.Errorf("build seed query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	return nil
}

// DB отдаёт нижележащее соединение для репозитория.
func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Stop() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
