// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/fingerprint"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

// fingerprintMaintainer recomputes and persists the global fingerprint inside
// a caller-owned transaction. Every lead mutation calls commit after changing
// its row, so the fingerprint and the rows it covers always commit together.
type fingerprintMaintainer struct {
	historyLimit int
}

func newFingerprintMaintainer(historyLimit int) *fingerprintMaintainer {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &fingerprintMaintainer{historyLimit: historyLimit}
}

// commit must run after the row change of the same transaction. The advisory
// lock makes concurrent mutations recompute one after another, so the last
// committer always sees every earlier committed row.
func (m *fingerprintMaintainer) commit(ctx context.Context, tx DBTX) (models.Fingerprint, error) {
	if _, err := tx.ExecContext(ctx, lockAdvisory, fingerprintLockKey); err != nil {
		return models.Fingerprint{}, fmt.Errorf("%w: advisory lock: %w", ErrExecutingQuery, err)
	}

	pairs, err := queryVersionPairs(ctx, tx)
	if err != nil {
		return models.Fingerprint{}, err
	}

	fp := models.Fingerprint{Value: fingerprint.Compute(pairs)}
	if err = tx.QueryRowContext(ctx, upsertConfig, configKeyFingerprint, fp.Value).Scan(&fp.UpdatedAt); err != nil {
		return models.Fingerprint{}, fmt.Errorf("%w: store fingerprint: %w", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, insertFingerprintHistory, fp.Value); err != nil {
		return models.Fingerprint{}, fmt.Errorf("%w: append history: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, trimFingerprintHistory, m.historyLimit); err != nil {
		return models.Fingerprint{}, fmt.Errorf("%w: trim history: %w", ErrExecutingQuery, err)
	}

	return fp, nil
}

type fingerprintRepository struct {
	db         *DB
	maintainer *fingerprintMaintainer
	logger     *logger.Logger
}

// NewFingerprintRepository returns the PostgreSQL fingerprint repository.
func NewFingerprintRepository(db *DB, historyLimit int, logger *logger.Logger) FingerprintRepository {
	return &fingerprintRepository{
		db:         db,
		maintainer: newFingerprintMaintainer(historyLimit),
		logger:     logger,
	}
}

func (r *fingerprintRepository) GetFingerprint(ctx context.Context) (models.Fingerprint, error) {
	var (
		value     string
		updatedAt time.Time
	)

	err := r.db.QueryRowContext(ctx, selectConfig, configKeyFingerprint).Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && value == "") {
		return models.Fingerprint{}, ErrFingerprintUnavailable
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fingerprintRepository.GetFingerprint").
			Msg("failed to read fingerprint")
		return models.Fingerprint{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Fingerprint{Value: value, UpdatedAt: updatedAt}, nil
}

func (r *fingerprintRepository) GetFingerprintHistory(ctx context.Context) ([]models.FingerprintHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectFingerprintHistory, r.maintainer.historyLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fingerprintRepository.GetFingerprintHistory").
			Msg("failed to query fingerprint history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.FingerprintHistoryEntry, 0, r.maintainer.historyLimit)
	for rows.Next() {
		var e models.FingerprintHistoryEntry
		if scanErr := rows.Scan(&e.ID, &e.Fingerprint, &e.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *fingerprintRepository) RecomputeFingerprint(ctx context.Context) (models.Fingerprint, error) {
	var fp models.Fingerprint
	err := r.db.withConflictRetry(ctx, "fingerprintRepository.RecomputeFingerprint", func(ctx context.Context, tx DBTX) error {
		var commitErr error
		fp, commitErr = r.maintainer.commit(ctx, tx)
		return commitErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fingerprintRepository.RecomputeFingerprint").
			Msg("failed to recompute fingerprint")
		return models.Fingerprint{}, err
	}

	return fp, nil
}

func (r *fingerprintRepository) ActiveVersions(ctx context.Context) ([]models.VersionPair, error) {
	return queryVersionPairs(ctx, r.db)
}
