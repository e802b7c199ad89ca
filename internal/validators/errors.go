package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidField wraps every rule violation.
	ErrInvalidField = errors.New("invalid field")
)
