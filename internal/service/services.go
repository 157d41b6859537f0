// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeyev

package service

import (
	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/store"
)

// Services aggregates the application's business-logic layer.
type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	serviceLogger := logger.GetChildLogger()

	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg.Auth, serviceLogger),
		PostService:    NewPostService(storages.Posts, serviceLogger),
		CommentService: NewCommentService(storages.Comments, serviceLogger),
	}
}
