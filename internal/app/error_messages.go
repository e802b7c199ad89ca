// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-auth-gate server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidLoginPassword is returned for both an unknown user ID and a
	// wrong password.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgUnauthenticated is the single 401 body for a missing, malformed,
	// forged or expired bearer token.
	MsgUnauthenticated = "unauthenticated"

	// MsgForbidden is returned when the token subject asks for another
	// user's profile.
	MsgForbidden = "forbidden"

	MsgUserNotFound = "user not found"

	// MsgUserAlreadyExists is returned when registering a taken user ID.
	MsgUserAlreadyExists = "user already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve. Details are logged only.
	MsgInternalServerError = "internal server error"

	MsgHealthy = "ok"
)
