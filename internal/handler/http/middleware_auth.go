// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
)

// auth is an HTTP middleware that admits only requests carrying a valid admin
// token.
//
// The token is read from "Authorization: Bearer <token>" and verified with
// [utils.ValidateAdminToken] against the shared sign key and the expected
// issuer. On success the token subject is stored in the request context
// under [utils.AdminSubjectCtxKey].
//
// Every rejection is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAdminToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("admin token rejected")
			utils.WriteError(w, utils.ErrTokenInvalid.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AdminSubjectCtxKey, token.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw header value.
//
// It returns [ErrEmptyAuthorizationHeader] for a missing header,
// [ErrEmptyToken] when only the scheme is present, and
// [utils.ErrInvalidAuthorizationHeader] for anything else that is not
// "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	if strings.EqualFold(authHeader, "Bearer") {
		return "", ErrEmptyToken
	}

	return utils.ParseBearerToken(authHeader)
}
