// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

type notificationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNotificationRepository returns the PostgreSQL notification repository.
// The last_notified_at row doubles as the cross-process throttle lock.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

// RunNotificationCycle holds a row lock on last_notified_at while fn runs.
// Conflicts are not retried here: a retried cycle could dispatch twice. If the
// commit fails after fn dispatched, the same leads are sent again on the next
// cycle.
func (r *notificationRepository) RunNotificationCycle(ctx context.Context, fn NotificationCycleFunc) error {
	log := logger.FromContext(ctx)

	err := WithTx(ctx, r.db.DB, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, ensureConfig, configKeyLastNotified); err != nil {
			return fmt.Errorf("%w: ensure throttle row: %w", ErrExecutingQuery, err)
		}

		var raw string
		if err := tx.QueryRowContext(ctx, lockConfig, configKeyLastNotified).Scan(&raw); err != nil {
			return fmt.Errorf("%w: lock throttle row: %w", ErrExecutingQuery, err)
		}

		last, err := parseLastNotified(raw)
		if err != nil {
			return err
		}

		pending, err := queryLeads(ctx, tx, selectPendingLeads)
		if err != nil {
			return err
		}

		receipt, err := fn(ctx, models.NotificationState{LastNotifiedAt: last, Pending: pending})
		if err != nil {
			return err
		}
		if !receipt.Dispatched || len(pending) == 0 {
			return nil
		}

		ids := make([]int64, len(pending))
		for i, lead := range pending {
			ids[i] = lead.ID
		}
		query, args, err := buildMarkNotifiedQuery(ids)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: mark notified: %w", ErrExecutingQuery, err)
		}

		at := receipt.At.UTC().Format(time.RFC3339Nano)
		if _, err = tx.ExecContext(ctx, upsertConfig, configKeyLastNotified, at); err != nil {
			return fmt.Errorf("%w: advance throttle: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.RunNotificationCycle").
			Msg("notification cycle rolled back")
	}

	return err
}

func parseLastNotified(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: last_notified_at %q: %w", ErrScanningRow, raw, err)
	}
	return t, nil
}
