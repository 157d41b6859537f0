package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/go-blog-api/internal/utils"
	"github.com/avdeyev/go-blog-api/models"
)

// Demo fixtures inserted when seeding is enabled. The password for the demo
// account is "1234".
const (
	seedUsername = "Billy"
	seedEmail    = "billy@mail.com"
	seedPassword = "1234"

	seedPostTitle   = "My first post"
	seedPostContent = "Hello everyone, this is the very first post on this blog."

	seedCommentContent = "Great first post, welcome!"
)

// Seed inserts a demo user with one post and one comment, for local
// development and manual API exploration. Idempotent: if the demo user
// already exists, nothing is inserted.
func (s *Storages) Seed(ctx context.Context) error {
	_, err := s.Users.FindUserByEmail(ctx, seedEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("error checking for existing demo user: %w", err)
	}

	hash, err := utils.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("error hashing demo password: %w", err)
	}

	user, err := s.Users.CreateUser(ctx, models.User{
		Username:     seedUsername,
		Email:        seedEmail,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("error inserting demo user: %w", err)
	}

	post, err := s.Posts.CreatePost(ctx, models.Post{
		UserID:  user.UserID,
		Title:   seedPostTitle,
		Content: seedPostContent,
	})
	if err != nil {
		return fmt.Errorf("error inserting demo post: %w", err)
	}

	_, err = s.Comments.CreateComment(ctx, models.Comment{
		PostID:  post.PostID,
		UserID:  user.UserID,
		Content: seedCommentContent,
	})
	if err != nil {
		return fmt.Errorf("error inserting demo comment: %w", err)
	}

	return nil
}
