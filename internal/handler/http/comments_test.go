package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/go-blog-api/internal/service"
	"github.com/avdeyev/go-blog-api/internal/store"
	"github.com/avdeyev/go-blog-api/models"
)

// ─────────────────────────────────────────────
// Mock CommentService
// ─────────────────────────────────────────────

type mockCommentService struct {
	createCommentFn func(ctx context.Context, author models.User, request models.CreateCommentRequest) (models.Comment, error)
	deleteCommentFn func(ctx context.Context, actor models.User, commentID int64) error
}

func (m *mockCommentService) CreateComment(ctx context.Context, author models.User, request models.CreateCommentRequest) (models.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, author, request)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, actor models.User, commentID int64) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, actor, commentID)
	}
	return nil
}

func TestCreateComment_OK(t *testing.T) {
	comments := &mockCommentService{
		createCommentFn: func(ctx context.Context, author models.User, request models.CreateCommentRequest) (models.Comment, error) {
			assert.Equal(t, testAuthor.UserID, author.UserID)
			return models.Comment{CommentID: 100, PostID: request.PostID, UserID: author.UserID, Content: request.Content}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAs(testAuthor), CommentService: comments})
	router := h.Init()

	body := jsonBody(t, models.CreateCommentRequest{Content: "Nice", PostID: 10})
	req := withSession(httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Comment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, int64(100), created.CommentID)
}

func TestCreateComment_RequiresSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	body := jsonBody(t, models.CreateCommentRequest{Content: "Nice", PostID: 10})
	req := httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateComment_MissingPost(t *testing.T) {
	comments := &mockCommentService{
		createCommentFn: func(ctx context.Context, author models.User, request models.CreateCommentRequest) (models.Comment, error) {
			return models.Comment{}, store.ErrPostNotFound
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAs(testAuthor), CommentService: comments})
	router := h.Init()

	body := jsonBody(t, models.CreateCommentRequest{Content: "Nice", PostID: 404})
	req := withSession(httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteComment_OK(t *testing.T) {
	comments := &mockCommentService{
		deleteCommentFn: func(ctx context.Context, actor models.User, commentID int64) error {
			assert.Equal(t, int64(100), commentID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAs(testAuthor), CommentService: comments})
	router := h.Init()

	req := withSession(httptest.NewRequest(http.MethodDelete, "/comment/100", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteComment_Forbidden(t *testing.T) {
	comments := &mockCommentService{
		deleteCommentFn: func(ctx context.Context, actor models.User, commentID int64) error {
			return service.ErrNotOwner
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAs(testAuthor), CommentService: comments})
	router := h.Init()

	req := withSession(httptest.NewRequest(http.MethodDelete, "/comment/100", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteComment_InvalidID(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: authAs(testAuthor)})
	router := h.Init()

	req := withSession(httptest.NewRequest(http.MethodDelete, "/comment/zero", nil))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
