// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired     = errors.New("name is required")
	ErrMobileRequired   = errors.New("mobile is required")
	ErrMessageTooLong   = errors.New("message exceeds 2000 characters")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidLeadID    = errors.New("invalid lead id")
	ErrInvalidVersion   = errors.New("invalid version")
)
