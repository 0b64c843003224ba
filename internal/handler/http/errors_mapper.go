// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lead-sync/internal/adapter"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	validators.ErrUnsupportedType:  http.StatusBadRequest,
	validators.ErrUnknownField:     http.StatusBadRequest,
	validators.ErrNameRequired:     http.StatusBadRequest,
	validators.ErrMobileRequired:   http.StatusBadRequest,
	validators.ErrMessageTooLong:   http.StatusBadRequest,
	validators.ErrInvalidEmail:     http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,
	validators.ErrInvalidLeadID:    http.StatusBadRequest,
	validators.ErrInvalidVersion:   http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrEmptyToken:                       http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	utils.ErrTokenInvalid:               http.StatusUnauthorized,

	store.ErrLeadNotFound:             http.StatusNotFound,
	store.ErrFingerprintUnavailable:   http.StatusServiceUnavailable,
	store.ErrConflictRetriesExhausted: http.StatusServiceUnavailable,

	adapter.ErrDispatchFailed: http.StatusBadGateway,

	store.ErrArchiveIncomplete:    http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Server-side
// failures are reported without their internal details.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusServiceUnavailable {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
