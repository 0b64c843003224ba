// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, payload signing,
// HTTP response writing, HTTP client initialization, admin token
// verification, clocks and identifiers.
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

// AdminSubjectCtxKey is the key used to store the verified admin subject
// ("sub" claim) in the request context.
//
//	ctx := context.WithValue(ctx, utils.AdminSubjectCtxKey, "admin@clinic")
var AdminSubjectCtxKey = contextKey("adminSubject")

// GetAdminSubjectFromContext retrieves the admin subject from the context.
//
// Returns ok == false when the value is missing, empty or of an unexpected
// type.
func GetAdminSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(AdminSubjectCtxKey).(string)
	return subject, ok && subject != ""
}
