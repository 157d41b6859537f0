package handler

import (
	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/handler/http"
	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/service"
)

// Handlers aggregates the transport handlers of the application. HTTP is
// the only transport today; the aggregate keeps wiring uniform if another
// one is added.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Auth, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
