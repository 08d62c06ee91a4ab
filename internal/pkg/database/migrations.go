package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const PgxDriverName = "pgx"

// MigrateDatabase applies every pending migration found at the root of
// migrations.
func MigrateDatabase(ctx context.Context, databaseURL string, migrations fs.FS, logger logging.Logger) error {
	db, err := sql.Open(PgxDriverName, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, result := range results {
		logger.Info("migration applied", "version", result.Source.Version, "duration", result.Duration.String())
	}

	return nil
}
