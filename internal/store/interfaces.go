package store

import (
	"context"

	"github.com/avdeyev/go-blog-api/models"
)

// UserRepository is the data-access contract for user accounts.
// Users are created at registration and read back during login and session
// validation; no update or delete operations are exposed.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository is the data-access contract for posts, including the reads
// that eager-load related entities (author summary, comments) in a single
// repository call.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)
	FindPostWithRelations(ctx context.Context, postID int64) (models.Post, error)
	ListPostsWithAuthors(ctx context.Context) ([]models.Post, error)
	ListPostsWithComments(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// CommentRepository is the data-access contract for comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// ErrorClassifier translates driver-specific error values into the two
// constraint classes the repositories care about. Each supported backend
// (PostgreSQL, SQLite) provides its own implementation.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err represents a unique-constraint
	// violation (e.g. duplicate email).
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err represents a foreign-key
	// violation (e.g. a comment referencing a missing post).
	IsForeignKeyViolation(err error) bool
}
