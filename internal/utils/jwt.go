// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-lead-sync/models"
)

var (
	// ErrTokenInvalid is returned for any token that fails verification.
	ErrTokenInvalid = errors.New("invalid admin token")
	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// ValidateAdminToken verifies an admin token issued by the external session
// service and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using tokenSignKey
//   - Issuer (iss) check when tokenIssuer is not empty
//   - Expiration (exp) check, which is mandatory
//   - Subject (sub) presence
//
//	token, err := utils.ValidateAdminToken(raw, "secret", "clinic-auth")
func ValidateAdminToken(tokenString, tokenSignKey, tokenIssuer string) (models.AdminToken, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.AdminToken{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Subject == "" {
		return models.AdminToken{}, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}

	return models.AdminToken{
		SignedString: tokenString,
		Subject:      claims.Subject,
		Role:         claims.Role,
	}, nil
}

// SignAdminToken issues an HS256 admin token. The server never calls it;
// it exists for the sync client's tests and for local tooling that plays the
// role of the session service.
func SignAdminToken(subject, issuer string, ttl time.Duration, signKey string) (string, error) {
	if subject == "" || ttl <= 0 || signKey == "" {
		return "", errors.New("invalid params for signing admin token")
	}

	now := time.Now()
	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: "admin",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing admin token: %w", err)
	}

	return signed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
