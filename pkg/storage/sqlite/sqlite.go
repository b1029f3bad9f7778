package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db *sql.DB
}

// New opens the sqlite database at filePath and applies pending migrations
func New(ctx context.Context, filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrateUp(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	return &SQLite{
		db: db,
	}, nil
}

// Get returns the value stored under key
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT "value" FROM "client_storage" WHERE "key" = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Put stores value under key, replacing any previous value
func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromCtx(ctx)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO "client_storage" ("key", "value", "updated_at") VALUES (?, ?, ?)
		ON CONFLICT("key") DO UPDATE SET "value" = excluded."value", "updated_at" = excluded."updated_at"`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		log.Error("failed to store value", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

// Delete removes the value stored under key. Deleting a missing key is not an error.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM "client_storage" WHERE "key" = ?`, key)
	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
