package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// UserRepository is the credential store: it owns the mapping from user ID
// to account record.
//
// Implementations must be safe for concurrent use.
type UserRepository interface {
	// CreateUser stores user if no account with the same UserID exists.
	// The existence check and the insert happen as one atomic step: of any
	// number of concurrent calls for the same UserID exactly one succeeds
	// and the rest return [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the account for userID or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}
