// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeyev

package http

import "errors"

// Sentinel errors used by the authentication middleware when locating the
// session token. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned when the request carries neither a
	// session cookie nor an "Authorization" header.
	ErrNoSessionToken = errors.New("no session token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the session cookie or the
	// "Authorization" header is present but the token value itself is an
	// empty string.
	ErrEmptyToken = errors.New("empty session token")

	// ErrInvalidPathParameter is returned when a numeric path parameter
	// (post, comment, or user ID) cannot be parsed as a positive integer.
	ErrInvalidPathParameter = errors.New("invalid path parameter")
)
