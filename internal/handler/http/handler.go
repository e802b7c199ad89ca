package http

import (
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	// allowQueryToken lets the auth middleware fall back to the "token"
	// query parameter when no Authorization header is sent.
	allowQueryToken bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		requestTimeout:  cfg.RequestTimeout,
		allowQueryToken: cfg.AllowQueryToken,
		logger:          logger,
	}
}
