package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against the "users" table on both PostgreSQL and SQLite; the
// dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with CreatedAt populated.
//
// Error handling:
//   - no RETURNING row (ON CONFLICT DO NOTHING fired) → [ErrUserAlreadyExists]
//   - unique/primary key violation from the driver → [ErrUserAlreadyExists]
//   - any other driver-level error → wrapped [ErrExecutingQuery]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	query, args, err := buildCreateUserQuery(r.db.placeholder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var insertedID string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&insertedID)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows), r.db.errorClassificator.IsUniqueViolation(err):
		log.Debug().Str("func", "*userRepository.CreateUser").Str("user_id", user.UserID).Msg("user already exists")
		return models.User{}, ErrUserAlreadyExists
	default:
		r.logDBError(log, "*userRepository.CreateUser", err)
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// FindUserByID retrieves the user whose user_id equals userID.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound]
//   - any other driver-level error → wrapped [ErrExecutingQuery]
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(r.db.placeholder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.UserID,
		&found.PasswordHash,
		&found.Profile.DisplayName,
		&found.Profile.Email,
		&found.CreatedAt,
	)
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	default:
		r.logDBError(log, "*userRepository.FindUserByID", err)
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *userRepository) logDBError(log *logger.Logger, fn string, err error) {
	retryable := r.db.errorClassificator.Classify(err) == Retryable
	log.Err(err).Str("func", fn).Bool("retryable", retryable).Msg("database error")
}
