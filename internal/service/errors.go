package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown user ID and a wrong
	// password so that login never reveals which accounts exist.
	ErrInvalidCredentials = errors.New("invalid login/password")

	// ErrUnauthenticated is returned when a request carries no usable
	// identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the authenticated subject asks for
	// another user's data.
	ErrForbidden = errors.New("access to another user's data is forbidden")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Token verification failures. Every error returned by
// [TokenService.Verify] wraps exactly one of them.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)
