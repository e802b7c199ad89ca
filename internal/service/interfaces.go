package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// AuthService implements the account operations behind the HTTP endpoints.
type AuthService interface {
	// RegisterUser hashes the password and creates the account. Returns
	// store.ErrUserAlreadyExists (wrapped) for a taken user ID.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login checks the credentials and issues a token. Unknown user and
	// wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// GetUserInfo returns the public profile of userID on behalf of the
	// authenticated subject. A subject may only read its own profile.
	GetUserInfo(ctx context.Context, subject, userID string) (models.UserInfo, error)
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, subject string) (models.Token, error)
	Verify(ctx context.Context, token string) (models.Token, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
