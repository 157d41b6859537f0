package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/avdeyev/go-blog-api/models"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	repo := &postRepository{
		db:     db,
		logger: db.logger,
	}
	return repo, mock
}

func postWithAuthorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"post_id", "user_id", "title", "content", "created_at",
		"username", "email",
	})
}

func commentWithAuthorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"comment_id", "post_id", "user_id", "content", "created_at",
		"username", "email",
	})
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	post := models.Post{
		UserID:  1,
		Title:   "First post",
		Content: "Hello",
	}

	rows := sqlmock.NewRows([]string{"post_id"}).AddRow(10)

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(post.UserID, post.Title, post.Content, sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreatePost(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostID != 10 {
		t.Errorf("expected PostID=10, got %d", created.PostID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestCreatePost_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreatePost(ctx, models.Post{UserID: 99})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindPostByID_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	now := time.Now()

	rows := postWithAuthorRows().
		AddRow(10, 1, "First post", "Hello", now, "billy", "billy@mail.com")

	mock.ExpectQuery("SELECT p.post_id").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	found, err := repo.FindPostByID(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.PostID != 10 {
		t.Errorf("expected PostID=10, got %d", found.PostID)
	}
	if found.User == nil || found.User.Username != "billy" {
		t.Errorf("expected author summary to be loaded, got %+v", found.User)
	}
}

func TestFindPostByID_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT p.post_id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPostByID(ctx, 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestFindPostWithRelations_LoadsComments(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	now := time.Now()

	postRows := postWithAuthorRows().
		AddRow(10, 1, "First post", "Hello", now, "billy", "billy@mail.com")

	mock.ExpectQuery("SELECT p.post_id").
		WithArgs(int64(10)).
		WillReturnRows(postRows)

	commentRows := commentWithAuthorRows().
		AddRow(100, 10, 2, "Nice post", now, "anna", "anna@mail.com").
		AddRow(101, 10, 1, "Thanks", now, "billy", "billy@mail.com")

	mock.ExpectQuery("SELECT c.comment_id").
		WithArgs(int64(10)).
		WillReturnRows(commentRows)

	found, err := repo.FindPostWithRelations(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(found.Comments))
	}
	if found.Comments[0].User == nil || found.Comments[0].User.Username != "anna" {
		t.Errorf("expected comment author summary, got %+v", found.Comments[0].User)
	}
}

func TestFindPostWithRelations_NoComments(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	now := time.Now()

	postRows := postWithAuthorRows().
		AddRow(10, 1, "First post", "Hello", now, "billy", "billy@mail.com")

	mock.ExpectQuery("SELECT p.post_id").
		WithArgs(int64(10)).
		WillReturnRows(postRows)

	mock.ExpectQuery("SELECT c.comment_id").
		WithArgs(int64(10)).
		WillReturnRows(commentWithAuthorRows())

	found, err := repo.FindPostWithRelations(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Comments == nil {
		t.Fatal("expected empty comments slice, got nil")
	}
	if len(found.Comments) != 0 {
		t.Fatalf("expected no comments, got %d", len(found.Comments))
	}
}

func TestListPostsWithAuthors_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	now := time.Now()

	rows := postWithAuthorRows().
		AddRow(10, 1, "First", "a", now, "billy", "billy@mail.com").
		AddRow(11, 2, "Second", "b", now, "anna", "anna@mail.com")

	mock.ExpectQuery("SELECT p.post_id").
		WillReturnRows(rows)

	posts, err := repo.ListPostsWithAuthors(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[1].User == nil || posts[1].User.Email != "anna@mail.com" {
		t.Errorf("expected second author summary, got %+v", posts[1].User)
	}
}

func TestListPostsWithComments_GroupsByPost(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	now := time.Now()

	postRows := postWithAuthorRows().
		AddRow(10, 1, "First", "a", now, "billy", "billy@mail.com").
		AddRow(11, 2, "Second", "b", now, "anna", "anna@mail.com")

	mock.ExpectQuery("SELECT p.post_id").
		WillReturnRows(postRows)

	commentRows := commentWithAuthorRows().
		AddRow(100, 10, 2, "On first", now, "anna", "anna@mail.com").
		AddRow(101, 11, 1, "On second", now, "billy", "billy@mail.com").
		AddRow(102, 11, 2, "Again", now, "anna", "anna@mail.com")

	mock.ExpectQuery("SELECT c.comment_id").
		WithArgs(int64(10), int64(11)).
		WillReturnRows(commentRows)

	posts, err := repo.ListPostsWithComments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts[0].Comments) != 1 {
		t.Errorf("expected 1 comment on first post, got %d", len(posts[0].Comments))
	}
	if len(posts[1].Comments) != 2 {
		t.Errorf("expected 2 comments on second post, got %d", len(posts[1].Comments))
	}
}

func TestListPostsWithComments_NoPosts(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT p.post_id").
		WillReturnRows(postWithAuthorRows())

	posts, err := repo.ListPostsWithComments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestDeletePost_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeletePost(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePost(ctx, 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeletePost_ExecError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(10)).
		WillReturnError(errors.New("db failure"))

	err := repo.DeletePost(ctx, 10)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
