package crypto

import "errors"

// ErrPasswordTooLong is returned by [PasswordHasher.Hash] when the password
// exceeds MaxPasswordLength bytes.
var ErrPasswordTooLong = errors.New("password is too long")
