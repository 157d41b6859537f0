package service

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/store"
	"github.com/avdeyev/go-blog-api/models"
)

// postService is the concrete implementation of PostService. Ownership rules
// for destructive operations are enforced here: the repository layer knows
// nothing about the acting user.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost persists a new post authored by the given user.
//
// Returns the persisted post (with a server-assigned PostID and the author
// summary populated) or:
//   - ErrInvalidDataProvided if title or content is empty.
//   - A wrapped storage error if the repository call fails.
func (s *postService) CreatePost(ctx context.Context, author models.User, request models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if request.Title == "" || request.Content == "" {
		log.Error().Int64("userId", author.UserID).Msg("invalid post data provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	created, err := s.postRepository.CreatePost(ctx, models.Post{
		UserID:  author.UserID,
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		log.Err(err).Int64("userId", author.UserID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	created.User = author.Summary()
	return created, nil
}

// GetPost retrieves a single post with its author summary and comments.
//
// Returns a wrapped store.ErrPostNotFound when no such post exists.
func (s *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	found, err := s.postRepository.FindPostWithRelations(ctx, postID)
	if err != nil {
		log.Err(err).Int64("postId", postID).Msg("post search by id failed")
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}

	return found, nil
}

// ListPosts retrieves all posts with their author summaries, oldest first.
func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := s.postRepository.ListPostsWithAuthors(ctx)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return posts, nil
}

// ListPostsWithComments retrieves all posts with their author summaries and
// comments, oldest first.
func (s *postService) ListPostsWithComments(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := s.postRepository.ListPostsWithComments(ctx)
	if err != nil {
		log.Err(err).Msg("post listing with comments failed")
		return nil, fmt.Errorf("post listing with comments failed: %w", err)
	}

	return posts, nil
}

// DeletePost removes a post on behalf of the acting user. The post is loaded
// first so that a missing post and a foreign post are reported distinctly.
//
// Returns:
//   - A wrapped store.ErrPostNotFound if no such post exists.
//   - ErrNotOwner if the post belongs to another user.
//   - A wrapped storage error if the delete itself fails.
func (s *postService) DeletePost(ctx context.Context, actor models.User, postID int64) error {
	log := logger.FromContext(ctx)

	found, err := s.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		log.Err(err).Int64("postId", postID).Msg("post search by id failed")
		return fmt.Errorf("post search by id failed: %w", err)
	}

	if found.UserID != actor.UserID {
		log.Error().
			Int64("postId", postID).
			Int64("ownerId", found.UserID).
			Int64("actorId", actor.UserID).
			Msg("post deletion denied: not the owner")
		return ErrNotOwner
	}

	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("postId", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
