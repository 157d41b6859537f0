package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/utils"
	"github.com/avdeyev/go-blog-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "user registered",
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, h.cookieMaxAge))
	utils.WriteJSON(w, models.MessageResponse{Message: "logged in"}, http.StatusOK)
}

// logout clears the session cookie. Tokens already handed out stay valid
// until they expire; there is no server-side session state to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", 0))
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}
