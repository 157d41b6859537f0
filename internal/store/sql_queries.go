package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/avdeyev/go-blog-api/models"
)

// Column sets shared between single-row and multi-row reads.
var (
	userColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

	// post columns joined with the author summary
	postWithAuthorColumns = []string{
		"p.post_id", "p.user_id", "p.title", "p.content", "p.created_at",
		"u.username", "u.email",
	}

	// comment columns joined with the author summary
	commentWithAuthorColumns = []string{
		"c.comment_id", "c.post_id", "c.user_id", "c.content", "c.created_at",
		"u.username", "u.email",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert("users").
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt)
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) sq.SelectBuilder {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email})
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) sq.SelectBuilder {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID})
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) sq.InsertBuilder {
	return b.Insert("posts").
		Columns("user_id", "title", "content", "created_at").
		Values(post.UserID, post.Title, post.Content, post.CreatedAt)
}

func buildSelectPostByIDQuery(b sq.StatementBuilderType, postID int64) sq.SelectBuilder {
	return b.Select(postWithAuthorColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.user_id").
		Where(sq.Eq{"p.post_id": postID})
}

func buildSelectPostsWithAuthorsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(postWithAuthorColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.user_id").
		OrderBy("p.post_id")
}

func buildDeletePostQuery(b sq.StatementBuilderType, postID int64) sq.DeleteBuilder {
	return b.Delete("posts").
		Where(sq.Eq{"post_id": postID})
}

func buildInsertCommentQuery(b sq.StatementBuilderType, comment models.Comment) sq.InsertBuilder {
	return b.Insert("comments").
		Columns("post_id", "user_id", "content", "created_at").
		Values(comment.PostID, comment.UserID, comment.Content, comment.CreatedAt)
}

func buildSelectCommentByIDQuery(b sq.StatementBuilderType, commentID int64) sq.SelectBuilder {
	return b.Select("comment_id", "post_id", "user_id", "content", "created_at").
		From("comments").
		Where(sq.Eq{"comment_id": commentID})
}

// buildSelectCommentsByPostIDsQuery selects the comments of one or more
// posts, joined with their author summaries, ordered so that grouping by
// post is a linear pass.
func buildSelectCommentsByPostIDsQuery(b sq.StatementBuilderType, postIDs []int64) sq.SelectBuilder {
	return b.Select(commentWithAuthorColumns...).
		From("comments c").
		Join("users u ON u.user_id = c.user_id").
		Where(sq.Eq{"c.post_id": postIDs}).
		OrderBy("c.post_id", "c.comment_id")
}

func buildDeleteCommentQuery(b sq.StatementBuilderType, commentID int64) sq.DeleteBuilder {
	return b.Delete("comments").
		Where(sq.Eq{"comment_id": commentID})
}
