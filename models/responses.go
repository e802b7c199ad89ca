// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`

	// ExpiresAt lets clients refresh proactively instead of waiting
	// for a 401.
	ExpiresAt time.Time `json:"expires_at"`
}

// UserInfo is the public profile returned by the info endpoint.
type UserInfo struct {
	UserID    string    `json:"user_id"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
}
