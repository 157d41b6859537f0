package http

import (
	"errors"
	"net/http"

	"github.com/avdeyev/go-blog-api/internal/service"
	"github.com/avdeyev/go-blog-api/internal/store"
	"github.com/avdeyev/go-blog-api/internal/utils"
	"github.com/avdeyev/go-blog-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:     http.StatusBadRequest,
	service.ErrPasswordUnusable:        http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrPostNotFound:       http.StatusNotFound,
	store.ErrCommentNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	ErrNoSessionToken:             http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidPathParameter:       http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// clientMessage maps err to the string that is safe to show a client.
// Sentinel errors carry client-safe text already; anything unmapped is
// flattened to the generic status text so that internal detail (SQL, driver
// errors) never leaks into a response body.
func clientMessage(err error, status int) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

// writeError translates err into the uniform JSON error body and status.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Error: clientMessage(err, status)}, status)
}
