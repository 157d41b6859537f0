// Package store implements the persistence layer of the application:
// a thin database/sql wrapper supporting PostgreSQL and SQLite backends,
// squirrel-built queries, and one repository per entity type. Eager-loading
// reads (post with author, post with comments) are JOIN queries assembled
// here so that each API read maps to a single repository call.
package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/migrations"
)

// Supported database dialects. The values double as database/sql driver
// names and goose dialect identifiers.
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB wraps the raw connection with the dialect-specific pieces the
// repositories need: a squirrel builder configured with the right
// placeholder format, and an error classifier for the active driver.
type DB struct {
	*sql.DB
	builder    sq.StatementBuilderType
	dialect    string
	classifier ErrorClassifier
	logger     *logger.Logger
}

// Migrate brings the schema up to date using the embedded goose migrations
// for the active dialect. Safe to call on every startup; it never drops or
// recreates existing tables.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// insertGetID executes the given INSERT and returns the generated primary
// key. PostgreSQL reports it via a RETURNING clause; SQLite via the
// driver's LastInsertId.
func (db *DB) insertGetID(ctx context.Context, ib sq.InsertBuilder, idColumn string) (int64, error) {
	if db.dialect == dialectPostgres {
		query, args, err := ib.Suffix("RETURNING " + idColumn).ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := ib.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}
