// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/validators"
	"github.com/MKhiriev/go-lead-sync/models"
)

// LeadValidationService normalizes and validates inputs before handing them
// to the wrapped [LeadService].
type LeadValidationService struct {
	inner     LeadService
	validator validators.Validator
}

func NewLeadValidationService() LeadServiceWrapper {
	return &LeadValidationService{
		validator: validators.NewLeadValidator(),
	}
}

// Wrap implements [LeadServiceWrapper].
func (v *LeadValidationService) Wrap(inner LeadService) LeadService {
	return &LeadValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *LeadValidationService) Create(ctx context.Context, payload models.LeadPayload) (models.Lead, error) {
	payload = validators.NormalizeLeadPayload(payload)
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Lead{}, fmt.Errorf("invalid lead: %w", err)
	}

	return v.inner.Create(ctx, payload)
}

func (v *LeadValidationService) Update(ctx context.Context, id int64, update models.LeadUpdate) (models.Lead, error) {
	if id <= 0 {
		return models.Lead{}, fmt.Errorf("%w: %d", validators.ErrInvalidLeadID, id)
	}

	update = validators.NormalizeLeadUpdate(update)
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Lead{}, fmt.Errorf("invalid lead update: %w", err)
	}

	return v.inner.Update(ctx, id, update)
}

func (v *LeadValidationService) SoftDelete(ctx context.Context, id int64) (models.Lead, error) {
	if id <= 0 {
		return models.Lead{}, fmt.Errorf("%w: %d", validators.ErrInvalidLeadID, id)
	}

	return v.inner.SoftDelete(ctx, id)
}

func (v *LeadValidationService) List(ctx context.Context) ([]models.Lead, error) {
	return v.inner.List(ctx)
}
