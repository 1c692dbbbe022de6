package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pr-poehali-dev/lordhost-game-server/migrations"
	"github.com/pressly/goose/v3"
)

func RunMigrations(ctx context.Context, dsn string) error {
	if dsn == "" {
		return ErrNotConfigured
	}
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse dsn: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	db := stdlib.OpenDB(*cfg)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}
