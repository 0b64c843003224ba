// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-lead-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the lead's display name.
	FieldName = "name"

	// FieldMobile targets the normalized ten-digit mobile number.
	FieldMobile = "mobile"

	// FieldEmail targets the optional contact address.
	FieldEmail = "email"

	// FieldMessage targets the free-text message and its length limit.
	FieldMessage = "message"

	// FieldUpdateFields requires a partial update to carry at least one field.
	FieldUpdateFields = "update_fields"

	// FieldVersions targets the id→version map of a round two sync request.
	FieldVersions = "versions"
)

// MaxMessageLength is the longest message accepted, in characters.
const MaxMessageLength = 2000

const mobileDigits = 10

var (
	horizontalSpaceRun = regexp.MustCompile(`[ \t]+`)
	newlineRun         = regexp.MustCompile(`\n+`)
	nonDigit           = regexp.MustCompile(`\D`)
)

// LeadValidator implements [Validator] for lead intake payloads, admin
// updates and sync requests. Both value and pointer forms are accepted.
type LeadValidator struct{}

// NewLeadValidator constructs a LeadValidator and returns it as [Validator].
func NewLeadValidator() Validator {
	return &LeadValidator{}
}

// Validate dispatches to the type-specific check. Inputs are expected to be
// normalized already with [NormalizeLeadPayload] or [NormalizeLeadUpdate].
func (v *LeadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LeadPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.LeadPayload:
		return v.validatePayload(ctx, *value, fields...)

	case models.LeadUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.LeadUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LeadValidator) validatePayload(_ context.Context, payload models.LeadPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldMobile, FieldEmail, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if payload.Name == "" {
				return ErrNameRequired
			}
		case FieldMobile:
			if payload.Mobile == "" {
				return ErrMobileRequired
			}
		case FieldEmail:
			if err := validateEmail(payload.Email); err != nil {
				return err
			}
		case FieldMessage:
			if err := validateMessage(payload.Message); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LeadValidator) validateUpdate(_ context.Context, update models.LeadUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateFields, FieldEmail, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdateFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldEmail:
			if err := validateEmail(update.Email); err != nil {
				return err
			}
		case FieldMessage:
			if err := validateMessage(update.Message); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LeadValidator) validateSyncRequest(_ context.Context, request models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVersions}
	}

	for _, f := range fields {
		switch f {
		case FieldVersions:
			for id, version := range request.Versions {
				if id <= 0 {
					return fmt.Errorf("%w: %d", ErrInvalidLeadID, id)
				}
				if version < 1 {
					return fmt.Errorf("%w: lead %d has version %d", ErrInvalidVersion, id, version)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email *string) error {
	if email == nil {
		return nil
	}
	if _, err := mail.ParseAddress(*email); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, *email)
	}
	return nil
}

func validateMessage(message *string) error {
	if message != nil && utf8.RuneCountInString(*message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// NormalizeLeadPayload canonicalizes a raw intake request:
//   - name is trimmed and lower-cased
//   - email is trimmed and lower-cased, empty becomes nil
//   - mobile keeps only its last ten digits
//   - message whitespace is collapsed, empty becomes nil
func NormalizeLeadPayload(raw models.LeadPayload) models.LeadPayload {
	return models.LeadPayload{
		Name:    strings.ToLower(strings.TrimSpace(raw.Name)),
		Mobile:  NormalizeMobile(raw.Mobile),
		Email:   normalizeEmail(raw.Email),
		Message: normalizeMessage(raw.Message),
	}
}

// NormalizeLeadUpdate applies the intake normalization to the text fields of
// an admin update. A field that normalizes to empty is treated as absent.
func NormalizeLeadUpdate(raw models.LeadUpdate) models.LeadUpdate {
	out := raw
	out.Email = normalizeEmail(raw.Email)
	out.Message = normalizeMessage(raw.Message)
	return out
}

// NormalizeMobile strips every non-digit and keeps the last ten digits.
func NormalizeMobile(mobile string) string {
	digits := nonDigit.ReplaceAllString(mobile, "")
	if len(digits) > mobileDigits {
		digits = digits[len(digits)-mobileDigits:]
	}
	return digits
}

// CollapseWhitespace turns runs of spaces and tabs into one space and runs of
// newlines into one newline, then trims the result.
func CollapseWhitespace(s string) string {
	s = horizontalSpaceRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*email))
	if v == "" {
		return nil
	}
	return &v
}

func normalizeMessage(message *string) *string {
	if message == nil {
		return nil
	}
	v := CollapseWhitespace(*message)
	if v == "" {
		return nil
	}
	return &v
}
