// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is a signed bearer token together with the claims it carries.
//
// Tokens are self-contained: nothing about them is stored server-side.
// Validity is decided purely by the signature and ExpiresAt.
type Token struct {
	// Subject is the user identifier the token was issued for ("sub").
	Subject string `json:"-"`

	// IssuedAt is the "iat" claim.
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the "exp" claim. The token is rejected once the
	// verifying clock reaches this instant.
	ExpiresAt time.Time `json:"-"`

	// SignedString is the compact JWS serialization
	// (base64url header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
