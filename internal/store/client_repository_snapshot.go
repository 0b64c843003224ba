// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository returns the SQLite-backed snapshot repository.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) Versions(ctx context.Context) (map[int64]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectSnapshotVersions)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.Versions").
			Msg("failed to query snapshot versions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make(map[int64]int64)
	for rows.Next() {
		var id, version int64
		if scanErr := rows.Scan(&id, &version); scanErr != nil {
			log.Err(scanErr).
				Str("func", "snapshotRepository.Versions").
				Msg("failed to scan snapshot version row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		versions[id] = version
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "snapshotRepository.Versions").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return versions, nil
}

func (r *snapshotRepository) ListLeads(ctx context.Context) ([]models.Lead, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectSnapshotLeads)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ListLeads").
			Msg("failed to query snapshot leads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		scanErr := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Mobile,
			&lead.Email,
			&lead.Message,
			&lead.Contacted,
			&lead.Visited,
			&lead.AdminNotes,
			&lead.Version,
			&lead.Notified,
			&lead.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "snapshotRepository.ListLeads").
				Msg("failed to scan snapshot lead row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		leads = append(leads, lead)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "snapshotRepository.ListLeads").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return leads, nil
}

func (r *snapshotRepository) ApplyDiff(ctx context.Context, diff models.DiffResponse) error {
	log := logger.FromContext(ctx)

	err := WithTx(ctx, r.DB.DB, nil, func(ctx context.Context, tx DBTX) error {
		for _, lead := range diff.Updates {
			_, err := tx.ExecContext(ctx, upsertSnapshotLead,
				lead.ID,
				lead.Name,
				lead.Mobile,
				lead.Email,
				lead.Message,
				lead.Contacted,
				lead.Visited,
				lead.AdminNotes,
				lead.Version,
				lead.Notified,
				lead.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("%w: upsert lead %d: %w", ErrExecutingQuery, lead.ID, err)
			}
		}

		if len(diff.Deletions) > 0 {
			query, args, err := buildDeleteSnapshotQuery(diff.Deletions)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: delete leads: %w", ErrExecutingQuery, err)
			}
		}

		return setLastSynced(ctx, tx, diff.ServerTime)
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ApplyDiff").
			Int("updates", len(diff.Updates)).
			Int("deletions", len(diff.Deletions)).
			Msg("failed to apply diff")
		return err
	}

	return nil
}

func (r *snapshotRepository) MarkSynced(ctx context.Context, at time.Time) error {
	if err := setLastSynced(ctx, r.DB, at); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotRepository.MarkSynced").
			Msg("failed to record sync time")
		return err
	}
	return nil
}

func (r *snapshotRepository) LastSyncedAt(ctx context.Context) (time.Time, error) {
	var raw string
	err := r.DB.QueryRowContext(ctx, selectSyncState, syncStateKeyLastSynced).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: last_synced_at %q: %w", ErrScanningRow, raw, err)
	}
	return at, nil
}

func setLastSynced(ctx context.Context, q DBTX, at time.Time) error {
	_, err := q.ExecContext(ctx, upsertSyncState, syncStateKeyLastSynced, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("%w: set last_synced_at: %w", ErrExecutingQuery, err)
	}
	return nil
}
