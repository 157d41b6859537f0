package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/utils"
)

// getUser returns the user record for the given ID. Available to any
// authenticated caller; the password hash never leaves the models layer
// thanks to its `json:"-"` tag.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathID(r, "userId")
	if err != nil {
		log.Err(err).Msg("invalid user id")
		writeError(w, err)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("user lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// pathID parses the named chi URL parameter as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathParameter
	}

	return id, nil
}
