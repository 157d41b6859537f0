package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection via the pgx stdlib driver
// and wraps it in a [DB] configured with dollar placeholders and the
// PostgreSQL error classifier.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(dialectPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connection pool
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		dialect:    dialectPostgres,
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
	}

	return db, nil
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the SQLSTATE code returned by the pgx driver.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassifier]. Matches SQLSTATE 23505.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresErrorCode(err) == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation implements [ErrorClassifier]. Matches SQLSTATE 23503.
func (c *PostgresErrorClassifier) IsForeignKeyViolation(err error) bool {
	return postgresErrorCode(err) == pgerrcode.ForeignKeyViolation
}

func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
