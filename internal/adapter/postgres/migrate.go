package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/bizcrm-backend/migrations"
)

// EnsureSchema applies the embedded goose migrations to the database at dsn.
// Already applied versions are skipped, so it is safe to call on every start.
func EnsureSchema(ctx context.Context, dsn string) ([]*goose.MigrationResult, error) {
	return migrate(ctx, dsn, migrations.FS)
}

func migrate(ctx context.Context, dsn string, fsys fs.FS) ([]*goose.MigrationResult, error) {
	// goose requires *sql.DB.
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, MapError(fmt.Errorf("db ping: %w", err), "database", 0)
	}

	// goose.NewProvider handles $$-delimited bodies, unlike the legacy goose.Up.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}
