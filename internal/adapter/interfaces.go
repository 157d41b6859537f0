// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeyev

// Package adapter provides a typed Go client for the blog REST API.
//
// The primary abstraction is [BlogClient], which decouples callers from the
// underlying HTTP transport. The shipped implementation
// ([NewHTTPBlogClient]) keeps the session cookie issued at login in a cookie
// jar, so authenticated calls work the same way a browser session does.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avdeyev/go-blog-api/models"
)

// BlogClient defines transport-agnostic communication with the blog server.
// Implementations are responsible for serialisation, session management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type BlogClient interface {
	// Register creates a new account. It does not log the account in;
	// call Login afterwards to obtain a session.
	Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates and stores the session cookie for all subsequent
	// authenticated requests.
	Login(ctx context.Context, request models.LoginRequest) error

	// Logout drops the server-issued session cookie.
	Logout(ctx context.Context) error

	// GetUser fetches a user record by ID. Requires a session.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreatePost publishes a new post owned by the session user.
	CreatePost(ctx context.Context, request models.CreatePostRequest) (models.Post, error)

	// GetPost fetches a single post with its author and comments.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// ListPosts fetches all posts with their authors.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// ListPostsWithComments fetches all posts with authors and comments.
	ListPostsWithComments(ctx context.Context) ([]models.Post, error)

	// DeletePost removes a post owned by the session user.
	DeletePost(ctx context.Context, postID int64) error

	// CreateComment adds a comment owned by the session user.
	CreateComment(ctx context.Context, request models.CreateCommentRequest) (models.Comment, error)

	// DeleteComment removes a comment owned by the session user.
	DeleteComment(ctx context.Context, commentID int64) error
}
