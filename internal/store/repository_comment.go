package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns it with server-assigned
// fields (CommentID, CreatedAt) populated.
//
// Error handling:
//   - foreign-key violation on post_id or user_id → [ErrPostNotFound]
//     (in practice the user row always exists, since it comes from an
//     authenticated session)
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment.CreatedAt = time.Now().UTC()

	id, err := r.db.insertGetID(ctx, buildInsertCommentQuery(r.db.builder, comment), "comment_id")
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")

		if r.db.classifier.IsForeignKeyViolation(err) {
			return models.Comment{}, ErrPostNotFound
		}
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	comment.CommentID = id
	return comment, nil
}

// FindCommentByID retrieves a single comment by its identifier. The author
// summary is not loaded; this read exists for ownership checks before a
// delete.
//
// Error handling:
//   - empty result set → [ErrCommentNotFound]
func (r *commentRepository) FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentByIDQuery(r.db.builder, commentID).ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Comment
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.CommentID, &found.PostID, &found.UserID, &found.Content, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Msg("error scanning comment row")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteComment removes the comment with the given ID.
//
// Error handling:
//   - no rows affected → [ErrCommentNotFound]
func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCommentQuery(r.db.builder, commentID).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
