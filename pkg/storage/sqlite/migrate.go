package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kasuboski/moviez/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsTable = "client_storage_migrations"

// ErrDirtySchema is returned when a previous migration failed half way
var ErrDirtySchema = errors.New("client storage schema is dirty")

// migrateUp brings the client storage schema to the latest version. The
// migrator is not closed since that would close db.
func migrateUp(ctx context.Context, db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{
		MigrationsTable: migrationsTable,
		NoTxWrap:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate client storage: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}

	logger.FromCtx(ctx).Debugw("client storage schema ready", "version", version)
	return nil
}

// SchemaVersion reports the applied migration version and whether the last
// migration was left incomplete
func (s *SQLite) SchemaVersion(ctx context.Context) (version uint, dirty bool, err error) {
	var v sql.NullInt64
	err = s.db.QueryRowContext(ctx, `SELECT "version", "dirty" FROM "`+migrationsTable+`" LIMIT 1`).Scan(&v, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return uint(v.Int64), dirty, nil
}
