package service

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/store"
	"github.com/avdeyev/go-blog-api/models"
)

// commentService is the concrete implementation of CommentService.
type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService wired to the given
// CommentRepository.
func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// CreateComment persists a new comment authored by the given user.
//
// Returns the persisted comment (with a server-assigned CommentID and the
// author summary populated) or:
//   - ErrInvalidDataProvided if content is empty or the post ID is not
//     positive.
//   - A wrapped store.ErrPostNotFound if the target post does not exist.
//   - A wrapped storage error if the repository call fails.
func (s *commentService) CreateComment(ctx context.Context, author models.User, request models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if request.Content == "" || request.PostID <= 0 {
		log.Error().Int64("userId", author.UserID).Msg("invalid comment data provided")
		return models.Comment{}, ErrInvalidDataProvided
	}

	created, err := s.commentRepository.CreateComment(ctx, models.Comment{
		PostID:  request.PostID,
		UserID:  author.UserID,
		Content: request.Content,
	})
	if err != nil {
		log.Err(err).Int64("postId", request.PostID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	created.User = author.Summary()
	return created, nil
}

// DeleteComment removes a comment on behalf of the acting user. The comment
// is loaded first so that a missing comment and a foreign comment are
// reported distinctly.
//
// Returns:
//   - A wrapped store.ErrCommentNotFound if no such comment exists.
//   - ErrNotOwner if the comment belongs to another user.
//   - A wrapped storage error if the delete itself fails.
func (s *commentService) DeleteComment(ctx context.Context, actor models.User, commentID int64) error {
	log := logger.FromContext(ctx)

	found, err := s.commentRepository.FindCommentByID(ctx, commentID)
	if err != nil {
		log.Err(err).Int64("commentId", commentID).Msg("comment search by id failed")
		return fmt.Errorf("comment search by id failed: %w", err)
	}

	if found.UserID != actor.UserID {
		log.Error().
			Int64("commentId", commentID).
			Int64("ownerId", found.UserID).
			Int64("actorId", actor.UserID).
			Msg("comment deletion denied: not the owner")
		return ErrNotOwner
	}

	if err := s.commentRepository.DeleteComment(ctx, commentID); err != nil {
		log.Err(err).Int64("commentId", commentID).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}
