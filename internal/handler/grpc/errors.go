// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/internal/validators"
)

var (
	errMissingMetadata      = errors.New("missing metadata")
	errMissingAuthorization = errors.New("missing `authorization` metadata")
)

var errorCodeMap = map[error]codes.Code{
	validators.ErrUnsupportedType: codes.InvalidArgument,
	validators.ErrUnknownField:    codes.InvalidArgument,
	validators.ErrInvalidLeadID:   codes.InvalidArgument,
	validators.ErrInvalidVersion:  codes.InvalidArgument,

	errMissingMetadata:                  codes.Unauthenticated,
	errMissingAuthorization:             codes.Unauthenticated,
	utils.ErrInvalidAuthorizationHeader: codes.Unauthenticated,
	utils.ErrTokenInvalid:               codes.Unauthenticated,

	store.ErrConflictRetriesExhausted: codes.Unavailable,
	store.ErrFingerprintUnavailable:   codes.Unavailable,
}

// statusFromError converts err into a gRPC status error. Unknown errors are
// reported as Internal without their details.
func statusFromError(err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}
