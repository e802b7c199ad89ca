// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity owned by the credential store.
// UserID is unique and immutable once the account is created.
// PasswordHash must never leave trusted boundaries.
type User struct {
	// UserID is the externally visible, unique account identifier
	// (e.g. "alice"). It is also the token subject.
	UserID string `json:"user_id"`

	// PasswordHash is the salted one-way hash of the user's password in
	// bcrypt's modular crypt format. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Profile holds optional, non-sensitive profile attributes.
	Profile Profile `json:"profile"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Profile holds optional user attributes returned by the info endpoint.
type Profile struct {
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=128"`
	Email       string `json:"email,omitempty" validate:"omitempty,email,max=254"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Info returns the public projection of the user.
func (u User) Info() UserInfo {
	return UserInfo{
		UserID:    u.UserID,
		Profile:   u.Profile,
		CreatedAt: u.CreatedAt,
	}
}
