// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/metrics"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/models"
)

type leadService struct {
	leadRepository store.LeadRepository
	notifier       NotifierService

	logger *logger.Logger
}

// NewLeadService returns the undecorated [LeadService]. Inputs reach the
// repository as given; wrap it with [NewLeadValidationService] to normalize
// and validate them first.
func NewLeadService(leadRepository store.LeadRepository, notifier NotifierService, logger *logger.Logger) LeadService {
	return &leadService{
		leadRepository: leadRepository,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *leadService) Create(ctx context.Context, payload models.LeadPayload) (models.Lead, error) {
	lead, err := s.leadRepository.CreateLead(ctx, payload)
	if err != nil {
		return models.Lead{}, err
	}

	s.committed(ctx, metrics.MutationCreate, lead)
	return lead, nil
}

func (s *leadService) Update(ctx context.Context, id int64, update models.LeadUpdate) (models.Lead, error) {
	lead, err := s.leadRepository.UpdateLead(ctx, id, update)
	if err != nil {
		return models.Lead{}, err
	}

	s.committed(ctx, metrics.MutationUpdate, lead)
	return lead, nil
}

func (s *leadService) SoftDelete(ctx context.Context, id int64) (models.Lead, error) {
	lead, err := s.leadRepository.SoftDeleteLead(ctx, id)
	if err != nil {
		return models.Lead{}, err
	}

	s.committed(ctx, metrics.MutationDelete, lead)
	return lead, nil
}

func (s *leadService) List(ctx context.Context) ([]models.Lead, error) {
	return s.leadRepository.ListAllLeads(ctx)
}

func (s *leadService) committed(ctx context.Context, kind string, lead models.Lead) {
	metrics.IncMutation(kind)

	logger.FromContext(ctx).Info().
		Str("func", "leadService.committed").
		Str("kind", kind).
		Int64("lead_id", lead.ID).
		Int64("version", lead.Version).
		Msg("lead mutation committed")

	s.notifier.Trigger(ctx)
}
