// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withConflictRetry] whether a failed lead
// transaction is worth running again.
type ErrorClassification int

const (
	// NonRetryable is the default: constraint violations, bad data and
	// anything the classifier does not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable marks conflicts between concurrent lead mutations and
	// transient connection loss. The whole transaction, fingerprint
	// recompute included, is rerun.
	Retryable
)

// retryableLeadCodes lists the single codes outside the retryable classes
// that still resolve on a rerun.
var retryableLeadCodes = map[string]struct{}{
	// the fingerprint row lock was not granted within lock_timeout
	pgerrcode.LockNotAvailable: {},
	// the server is starting up or in recovery
	pgerrcode.CannotConnectNow: {},
}

// PostgresErrorClassifier implements [ErrorClassificator] over the SQLSTATE
// carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns a classifier for the pgx driver.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Errors from other sources,
// including context cancellation, are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification]:
//   - class 08 (connection exception) and class 40 (transaction rollback:
//     serialization failure, deadlock) are retryable
//   - 55P03 lock_not_available and 57P03 cannot_connect_now are retryable
//   - everything else, class 23 integrity violations in particular, is not
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case pgerrcode.IsIntegrityConstraintViolation(code):
		// a duplicate or a broken FK will collide again
		return NonRetryable
	}

	if _, ok := retryableLeadCodes[code]; ok {
		return Retryable
	}
	return NonRetryable
}
