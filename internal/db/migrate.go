package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// OpenSQL opens a plain database/sql handle for the migration runner.
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return sqlDB, nil
}

func newProvider(sqlDB *sql.DB) (*goose.Provider, error) {
	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectPostgres, sqlDB, dir, goose.WithDisableGlobalRegistry(true))
}

// Migrate applies every pending migration and reports what ran.
func Migrate(ctx context.Context, sqlDB *sql.DB) ([]*goose.MigrationResult, error) {
	p, err := newProvider(sqlDB)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	res, err := p.Up(ctx)
	if err != nil {
		return res, fmt.Errorf("migrate up: %w", err)
	}
	return res, nil
}

// Rollback reverts the most recent migration.
func Rollback(ctx context.Context, sqlDB *sql.DB) (*goose.MigrationResult, error) {
	p, err := newProvider(sqlDB)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	res, err := p.Down(ctx)
	if err != nil {
		return res, fmt.Errorf("migrate down: %w", err)
	}
	return res, nil
}

func Status(ctx context.Context, sqlDB *sql.DB) ([]*goose.MigrationStatus, error) {
	p, err := newProvider(sqlDB)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return p.Status(ctx)
}
