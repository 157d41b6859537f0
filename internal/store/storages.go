// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeyev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/logger"
)

// Storages aggregates the per-entity repositories over a shared database
// connection. The backend is chosen from the DSN: postgres:// and
// postgresql:// schemes select PostgreSQL, anything else is treated as a
// SQLite file path.
type Storages struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository

	db *DB
}

// NewStorages opens the database connection for the configured backend,
// applies the embedded schema migrations, optionally seeds demo fixtures,
// and wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storeLogger := log.GetChildLogger()

	db, err := connect(ctx, cfg.DB, storeLogger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		storeLogger.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := &Storages{
		Users:    NewUserRepository(db, storeLogger),
		Posts:    NewPostRepository(db, storeLogger),
		Comments: NewCommentRepository(db, storeLogger),
		db:       db,
	}

	if cfg.DB.Seed {
		if err := storages.Seed(ctx); err != nil {
			storeLogger.Err(err).Str("func", "NewStorages").Msg("error seeding demo data")
			return nil, fmt.Errorf("error seeding demo data: %w", err)
		}
	}

	return storages, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
