package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/main/*.sql migrations/stats/*.sql
var migrations embed.FS

// Migration sets.
const (
	MigrationsMain  = "migrations/main"
	MigrationsStats = "migrations/stats"
)

// Migrate applies the embedded migrations in dir.
func Migrate(db *sql.DB, dir string) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
