// Package migrations applies the embedded goose SQL migrations for the
// blog schema. Migrations are strictly additive and idempotent: the schema
// is never dropped or recreated at startup, and running Migrate against an
// already-migrated database is a no-op.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the database schema up to date for the given goose dialect
// ("pgx" or "sqlite3"). Each dialect has its own migration directory because
// the auto-increment primary key syntax differs between the backends.
func Migrate(db *sql.DB, dialect string) error {
	dir, err := migrationDir(dialect)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded dir %q: %w", dir, err)
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationDir(dialect string) (string, error) {
	switch dialect {
	case "pgx", "postgres":
		return "postgres", nil
	case "sqlite3":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}
