// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/fingerprint"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/metrics"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/internal/validators"
	"github.com/MKhiriev/go-lead-sync/models"
)

type syncService struct {
	leadRepository        store.LeadRepository
	fingerprintRepository store.FingerprintRepository
	notifier              NotifierService

	validator validators.Validator
	clock     utils.Clock

	logger *logger.Logger
}

func NewSyncService(
	leadRepository store.LeadRepository,
	fingerprintRepository store.FingerprintRepository,
	notifier NotifierService,
	clock utils.Clock,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		leadRepository:        leadRepository,
		fingerprintRepository: fingerprintRepository,
		notifier:              notifier,
		validator:             validators.NewLeadValidator(),
		clock:                 clock,
		logger:                logger,
	}
}

func (s *syncService) Check(ctx context.Context, clientFingerprint string) (models.SyncStatus, error) {
	s.notifier.Trigger(ctx)

	status, err := s.check(ctx, clientFingerprint)
	if err != nil {
		return "", err
	}

	metrics.ObserveSync(string(status), 0, 0)
	return status, nil
}

func (s *syncService) Diff(ctx context.Context, req models.SyncRequest) (models.DiffResponse, error) {
	s.notifier.Trigger(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.DiffResponse{}, fmt.Errorf("invalid sync request: %w", err)
	}

	return s.diff(ctx, req.Versions)
}

func (s *syncService) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	s.notifier.Trigger(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse{}, fmt.Errorf("invalid sync request: %w", err)
	}

	status, err := s.check(ctx, req.Fingerprint)
	if err != nil {
		return models.SyncResponse{}, err
	}

	if status == models.SyncInSync || !req.IsRoundTwo() {
		metrics.ObserveSync(string(status), 0, 0)
		return models.NewSyncStatusResponse(status), nil
	}

	diff, err := s.diff(ctx, req.Versions)
	if err != nil {
		return models.SyncResponse{}, err
	}
	return models.NewSyncDiffResponse(diff), nil
}

func (s *syncService) Fingerprint(ctx context.Context) (models.Fingerprint, error) {
	s.notifier.Trigger(ctx)
	return s.fingerprintRepository.GetFingerprint(ctx)
}

func (s *syncService) History(ctx context.Context) ([]models.FingerprintHistoryEntry, error) {
	return s.fingerprintRepository.GetFingerprintHistory(ctx)
}

func (s *syncService) Audit(ctx context.Context) (models.FingerprintAudit, error) {
	stored, err := s.fingerprintRepository.GetFingerprint(ctx)
	if err != nil && !errors.Is(err, store.ErrFingerprintUnavailable) {
		return models.FingerprintAudit{}, err
	}

	pairs, err := s.fingerprintRepository.ActiveVersions(ctx)
	if err != nil {
		return models.FingerprintAudit{}, err
	}

	audit := models.FingerprintAudit{
		Stored:     stored.Value,
		Recomputed: fingerprint.Compute(pairs),
		Active:     len(pairs),
		CheckedAt:  s.clock.Now(),
	}
	audit.InSync = audit.Stored == audit.Recomputed
	metrics.ObserveAudit(audit.InSync)

	if !audit.InSync {
		logger.FromContext(ctx).Warn().
			Str("func", "syncService.Audit").
			Str("stored", audit.Stored).
			Str("recomputed", audit.Recomputed).
			Int("active", audit.Active).
			Msg("persisted fingerprint does not match the active set")
	}

	return audit, nil
}

func (s *syncService) check(ctx context.Context, clientFingerprint string) (models.SyncStatus, error) {
	current, err := s.fingerprintRepository.GetFingerprint(ctx)
	if errors.Is(err, store.ErrFingerprintUnavailable) {
		return models.SyncMismatch, nil
	}
	if err != nil {
		return "", err
	}

	if current.Value == clientFingerprint {
		return models.SyncInSync, nil
	}
	return models.SyncMismatch, nil
}

func (s *syncService) diff(ctx context.Context, clientVersions map[int64]int64) (models.DiffResponse, error) {
	active, err := s.leadRepository.ListActiveLeads(ctx)
	if err != nil {
		return models.DiffResponse{}, err
	}

	diff := ComputeDiff(active, clientVersions, s.clock.Now())
	metrics.ObserveSync(metrics.SyncDiff, len(diff.Updates), len(diff.Deletions))

	logger.FromContext(ctx).Debug().
		Str("func", "syncService.diff").
		Int("updates", len(diff.Updates)).
		Int("deletions", len(diff.Deletions)).
		Msg("sync diff computed")

	return diff, nil
}
