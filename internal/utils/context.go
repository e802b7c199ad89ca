// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the auth middleware stores the
// authenticated subject (the user ID carried by a verified token).
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSubject(ctx, "alice")
var SubjectCtxKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying subject under [SubjectCtxKey].
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

// GetSubjectFromContext retrieves the authenticated subject from the context.
//
// Returns the subject and an ok flag:
//   - ok == true : a non-empty string value is present
//   - ok == false: value is missing, empty, or has an unexpected type
//
// Example usage:
//
//	subject, ok := utils.GetSubjectFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
