// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the request body of the register and login endpoints.
//
// Password is plaintext and only lives for the duration of a request: it is
// hashed (register) or verified (login) and then dropped. It must never be
// logged; log the value through String, which leaves it out.
type Credentials struct {
	UserID   string  `json:"user_id" validate:"required,min=3,max=64,userid"`
	Password string  `json:"password" validate:"required,max=72"`
	Profile  Profile `json:"profile"`
}

// String returns a log-safe representation that omits the password.
func (c Credentials) String() string {
	return "Credentials{UserID: " + c.UserID + "}"
}
