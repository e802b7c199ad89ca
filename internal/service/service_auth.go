package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and profile
// lookup on top of a UserRepository, a PasswordHasher and a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher crypto.PasswordHasher
	tokens TokenService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the password cannot be hashed without
//     truncation.
//   - A wrapped storage error if the repository call fails (e.g. user ID
//     already taken, see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Stringer("credentials", credentials).Msg("password hashing failed")
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       credentials.UserID,
		PasswordHash: hash,
		Profile:      credentials.Profile,
	})
	if err != nil {
		log.Err(err).Str("user_id", credentials.UserID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user and issues a token for it.
//
// A lookup miss still spends one hash comparison so that the response time
// does not tell a missing account from a wrong password.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, credentials.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Burn(credentials.Password)
		log.Info().Str("user_id", credentials.UserID).Msg("login failed: unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("user_id", credentials.UserID).Msg("user search by id failed")
		return models.Token{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Info().Str("user_id", credentials.UserID).Msg("login failed: wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token issuing failed")
		return models.Token{}, err
	}

	return token, nil
}

// GetUserInfo checks that subject and userID name the same account before
// touching the store, so a forbidden request learns nothing about whether
// userID exists.
func (a *authService) GetUserInfo(ctx context.Context, subject, userID string) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	if subject == "" {
		return models.UserInfo{}, ErrUnauthenticated
	}
	if subject != userID {
		log.Warn().Str("subject", subject).Str("user_id", userID).Msg("access to another user's info denied")
		return models.UserInfo{}, ErrForbidden
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.UserInfo{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Info(), nil
}
