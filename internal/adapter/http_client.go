package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avdeyev/go-blog-api/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpBlogClient struct {
	client *resty.Client
}

// NewHTTPBlogClient constructs an HTTP/REST implementation of [BlogClient].
// The client carries its own cookie jar, so the session cookie set by Login
// is replayed on every later request automatically.
func NewHTTPBlogClient(cfg HTTPClientConfig) (BlogClient, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar)

	return &httpBlogClient{client: cli}, nil
}

func (c *httpBlogClient) Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var registered models.RegisterResponse
	if err = json.Unmarshal(resp.Body(), &registered); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	return registered, nil
}

func (c *httpBlogClient) Login(ctx context.Context, request models.LoginRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpBlogClient) Logout(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpBlogClient) GetUser(ctx context.Context, userID int64) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/user/%d", userID))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var found models.User
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return found, nil
}

func (c *httpBlogClient) CreatePost(ctx context.Context, request models.CreatePostRequest) (models.Post, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/post")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var created models.Post
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Post{}, fmt.Errorf("decode post response: %w", err)
	}

	return created, nil
}

func (c *httpBlogClient) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/post/%d", postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var found models.Post
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return models.Post{}, fmt.Errorf("decode post response: %w", err)
	}

	return found, nil
}

func (c *httpBlogClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	return c.listPosts(ctx, "/posts")
}

func (c *httpBlogClient) ListPostsWithComments(ctx context.Context) ([]models.Post, error) {
	return c.listPosts(ctx, "/posts-with-comments")
}

func (c *httpBlogClient) listPosts(ctx context.Context, path string) ([]models.Post, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode posts response: %w", err)
	}

	return posts, nil
}

func (c *httpBlogClient) DeletePost(ctx context.Context, postID int64) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/post/%d", postID))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpBlogClient) CreateComment(ctx context.Context, request models.CreateCommentRequest) (models.Comment, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/comment")
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	var created models.Comment
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Comment{}, fmt.Errorf("decode comment response: %w", err)
	}

	return created, nil
}

func (c *httpBlogClient) DeleteComment(ctx context.Context, commentID int64) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/comment/%d", commentID))
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}

	return mapHTTPError(resp)
}

// mapHTTPError maps a non-2xx response to one of the package's sentinel
// errors, attaching the server's error message when the body carries one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		if sentinel != nil {
			return fmt.Errorf("%w: %s", sentinel, body.Error)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body.Error)
	}

	if sentinel != nil {
		return sentinel
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
}
