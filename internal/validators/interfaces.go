// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account input before it reaches the auth
// service. The go-playground/validator rules live on the model tags; this
// package adds the field scoping used by login.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator validates a value. When fields are given only those fields are
// checked, otherwise the whole value is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
