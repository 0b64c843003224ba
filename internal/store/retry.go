// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
)

const (
	conflictRetryBase   = 20 * time.Millisecond
	conflictMaxRetries  = 4
	conflictJitterRatio = 20
)

func conflictBackoff() retry.Backoff {
	b := retry.NewExponential(conflictRetryBase)
	b = retry.WithMaxRetries(conflictMaxRetries, b)
	return retry.WithJitterPercent(conflictJitterRatio, b)
}

// withConflictRetry runs fn in a transaction and reruns the whole
// transaction when it fails with an error the classifier marks retryable
// (serialization failures, deadlocks, dropped connections).
func (db *DB) withConflictRetry(ctx context.Context, op string, fn func(ctx context.Context, tx DBTX) error) error {
	log := logger.FromContext(ctx)

	attempt := 0
	err := retry.Do(ctx, conflictBackoff(), func(ctx context.Context) error {
		attempt++
		txErr := WithTx(ctx, db.DB, nil, fn)
		if txErr != nil && db.isRetryable(txErr) {
			log.Warn().Err(txErr).
				Str("func", op).
				Int("attempt", attempt).
				Msg("transaction conflict, retrying")
			return retry.RetryableError(txErr)
		}
		return txErr
	})

	if err != nil && db.isRetryable(err) {
		return fmt.Errorf("%w: %w", ErrConflictRetriesExhausted, err)
	}

	return err
}

func (db *DB) isRetryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}
