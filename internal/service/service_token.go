// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// tokenService issues HS256 JWTs and verifies them. All fields are set at
// construction and only read afterwards, so one instance serves concurrent
// requests.
type tokenService struct {
	// signKey is a private copy of the configured secret.
	signKey []byte

	// issuer is the "iss" claim embedded in every issued JWT and required
	// on every verified one.
	issuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// leeway extends the expiry check to absorb clock skew.
	leeway time.Duration

	now func() time.Time
}

// TokenServiceOption customises a token service at construction.
type TokenServiceOption func(*tokenService)

// WithClock replaces time.Now as the source of "now" for both issuing and
// verifying.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService constructs a [TokenService] from the token settings in cfg.
func NewTokenService(cfg config.App, opts ...TokenServiceOption) (TokenService, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 || cfg.TokenLeeway < 0 {
		return nil, fmt.Errorf("%w: incomplete token settings", ErrInvalidDataProvided)
	}

	s := &tokenService{
		signKey:       []byte(cfg.TokenSignKey),
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		leeway:        cfg.TokenLeeway,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue signs a token for subject valid from now for the configured
// duration.
func (s *tokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subject, s.now(), s.tokenDuration, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks the token signature before anything else and then its
// issuer, expiry and subject. The error wraps one of ErrTokenMalformed,
// ErrTokenSignatureInvalid or ErrTokenExpired.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now(), s.leeway)
	if err == nil {
		return token, nil
	}

	switch {
	case errors.Is(err, utils.ErrJWTExpired):
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, utils.ErrJWTSignatureInvalid):
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	default:
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
