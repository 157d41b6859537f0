package service

import (
	"context"

	"github.com/avdeyev/go-blog-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type PostService interface {
	CreatePost(ctx context.Context, author models.User, request models.CreatePostRequest) (models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsWithComments(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, actor models.User, postID int64) error
}

type CommentService interface {
	CreateComment(ctx context.Context, author models.User, request models.CreateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, actor models.User, commentID int64) error
}
