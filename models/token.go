// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are the claims of an admin token issued by the external
// session service. The server only verifies them.
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// AdminToken is a verified admin token.
type AdminToken struct {
	SignedString string
	Subject      string
	Role         string
}
