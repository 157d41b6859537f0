package http

import (
	"net/http"
	"time"

	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/service"
)

// sessionCookieName is the cookie carrying the signed JWT between login and
// logout.
const sessionCookieName = "token"

type Handler struct {
	services *service.Services

	// cookieSecure marks the session cookie Secure; set it in any TLS
	// deployment.
	cookieSecure bool

	// cookieMaxAge mirrors the token lifetime so that browsers drop the
	// cookie when the token inside it expires.
	cookieMaxAge time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		cookieSecure: cfg.CookieSecure,
		cookieMaxAge: cfg.TokenDuration,
		logger:       logger,
	}
}

// sessionCookie builds the HttpOnly session cookie carrying the signed
// token. An empty value with a negative max age clears the cookie.
func (h *Handler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	if value == "" {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(maxAge.Seconds())
	}

	return cookie
}
