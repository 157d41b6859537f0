package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC()

	id, err := r.db.insertGetID(ctx, buildInsertUserQuery(r.db.builder, user), "user_id")
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.UserID = id
	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// address.
//
// Error handling:
//   - empty result set → [ErrUserNotFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, buildSelectUserByEmailQuery(r.db.builder, email))
}

// FindUserByID retrieves the user record with the given identifier. Used by
// the session middleware to confirm a token subject still resolves to a live
// account.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, buildSelectUserByIDQuery(r.db.builder, userID))
}

func (r *userRepository) findUser(ctx context.Context, sb sq.SelectBuilder) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sb.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.UserID, &found.Username, &found.Email, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
