package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
)

type Services struct {
	AuthService  AuthService
	TokenService TokenService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	tokens, err := NewTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	authService := NewAuthValidationService(validators.NewCredentialsValidator()).
		Wrap(NewAuthService(storages.UserRepository, hasher, tokens, logger))

	return &Services{
		AuthService:  authService,
		TokenService: tokens,
	}, nil
}
