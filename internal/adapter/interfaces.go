// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-auth-gate server.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-auth-gate server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. No token is issued; call Login next.
	Register(ctx context.Context, credentials models.Credentials) (models.UserInfo, error)

	// Login authenticates with user ID and password. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// UserInfo fetches the profile of userID using the stored token.
	UserInfo(ctx context.Context, userID string) (models.UserInfo, error)

	// Health reports whether the server answers its liveness probe.
	Health(ctx context.Context) error
}
