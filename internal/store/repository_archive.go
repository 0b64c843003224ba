// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

type archiveRepository struct {
	db         *DB
	maintainer *fingerprintMaintainer
	logger     *logger.Logger
}

// NewArchiveRepository returns the PostgreSQL archive repository.
func NewArchiveRepository(db *DB, historyLimit int, logger *logger.Logger) ArchiveRepository {
	return &archiveRepository{
		db:         db,
		maintainer: newFingerprintMaintainer(historyLimit),
		logger:     logger,
	}
}

func (r *archiveRepository) CompactDeleted(ctx context.Context) ([]models.ArchivedLead, error) {
	var archived []models.ArchivedLead

	err := r.db.withConflictRetry(ctx, "archiveRepository.CompactDeleted", func(ctx context.Context, tx DBTX) error {
		archived = archived[:0]

		if _, err := tx.ExecContext(ctx, lockAdvisory, archiveLockKey); err != nil {
			return fmt.Errorf("%w: archive lock: %w", ErrExecutingQuery, err)
		}

		rows, err := tx.QueryContext(ctx, archiveDeletedLeads)
		if err != nil {
			return fmt.Errorf("%w: copy to archive: %w", ErrExecutingQuery, err)
		}
		for rows.Next() {
			a, scanErr := scanArchivedLead(rows)
			if scanErr != nil {
				rows.Close()
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			archived = append(archived, a)
		}
		rows.Close()
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(archived) == 0 {
			return nil
		}

		ids := make([]int64, len(archived))
		for i, a := range archived {
			ids[i] = a.OriginalID
		}
		query, args, err := buildDeleteArchivedQuery(ids)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: delete archived: %w", ErrExecutingQuery, err)
		}
		deleted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if deleted != int64(len(archived)) {
			return fmt.Errorf("%w: copied %d, deleted %d", ErrArchiveIncomplete, len(archived), deleted)
		}

		_, err = r.maintainer.commit(ctx, tx)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "archiveRepository.CompactDeleted").
			Msg("compaction rolled back")
		return nil, err
	}

	return archived, nil
}
