// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

type leadRepository struct {
	db         *DB
	maintainer *fingerprintMaintainer
	logger     *logger.Logger
}

// NewLeadRepository returns the PostgreSQL lead repository. historyLimit
// bounds the fingerprint history appended by each mutation.
func NewLeadRepository(db *DB, historyLimit int, logger *logger.Logger) LeadRepository {
	return &leadRepository{
		db:         db,
		maintainer: newFingerprintMaintainer(historyLimit),
		logger:     logger,
	}
}

func (r *leadRepository) CreateLead(ctx context.Context, payload models.LeadPayload) (models.Lead, error) {
	var lead models.Lead
	err := r.mutate(ctx, "leadRepository.CreateLead", func(ctx context.Context, tx DBTX) error {
		var scanErr error
		lead, scanErr = scanLead(tx.QueryRowContext(ctx, insertLead,
			payload.Name,
			payload.Mobile,
			payload.Email,
			payload.Message,
		))
		if scanErr != nil {
			return fmt.Errorf("%w: insert lead: %w", ErrExecutingQuery, scanErr)
		}
		return nil
	})
	if err != nil {
		return models.Lead{}, err
	}

	return lead, nil
}

func (r *leadRepository) UpdateLead(ctx context.Context, id int64, update models.LeadUpdate) (models.Lead, error) {
	query, args, err := buildUpdateLeadQuery(id, update)
	if err != nil {
		return models.Lead{}, err
	}

	var lead models.Lead
	err = r.mutate(ctx, "leadRepository.UpdateLead", func(ctx context.Context, tx DBTX) error {
		var scanErr error
		lead, scanErr = scanLeadOrNotFound(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.Lead{}, err
	}

	return lead, nil
}

func (r *leadRepository) SoftDeleteLead(ctx context.Context, id int64) (models.Lead, error) {
	var lead models.Lead
	err := r.mutate(ctx, "leadRepository.SoftDeleteLead", func(ctx context.Context, tx DBTX) error {
		var scanErr error
		lead, scanErr = scanLeadOrNotFound(tx.QueryRowContext(ctx, softDeleteLead, id))
		return scanErr
	})
	if err != nil {
		return models.Lead{}, err
	}

	return lead, nil
}

func (r *leadRepository) GetLead(ctx context.Context, id int64) (models.Lead, error) {
	lead, err := scanLeadOrNotFound(r.db.QueryRowContext(ctx, selectLeadByID, id))
	if err != nil && !errors.Is(err, ErrLeadNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "leadRepository.GetLead").
			Int64("id", id).
			Msg("failed to read lead")
	}
	return lead, err
}

func (r *leadRepository) ListActiveLeads(ctx context.Context) ([]models.Lead, error) {
	leads, err := queryLeads(ctx, r.db, selectActiveLeads)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "leadRepository.ListActiveLeads").
			Msg("failed to list active leads")
	}
	return leads, err
}

func (r *leadRepository) ListAllLeads(ctx context.Context) ([]models.Lead, error) {
	leads, err := queryLeads(ctx, r.db, selectAllLeads)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "leadRepository.ListAllLeads").
			Msg("failed to list leads")
	}
	return leads, err
}

// mutate runs change and the fingerprint recompute in one transaction,
// retrying the pair on serialization and deadlock failures.
func (r *leadRepository) mutate(ctx context.Context, op string, change func(ctx context.Context, tx DBTX) error) error {
	err := r.db.withConflictRetry(ctx, op, func(ctx context.Context, tx DBTX) error {
		if err := change(ctx, tx); err != nil {
			return err
		}
		_, err := r.maintainer.commit(ctx, tx)
		return err
	})
	if err != nil && !errors.Is(err, ErrLeadNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", op).
			Msg("lead mutation rolled back")
	}
	return err
}
