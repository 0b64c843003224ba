// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLeadNotFound is returned when a lead with the requested id does not
	// exist or is already soft-deleted.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrFingerprintUnavailable is returned when the global fingerprint has
	// never been computed.
	ErrFingerprintUnavailable = errors.New("fingerprint is not initialized")

	// ErrArchiveIncomplete is returned when the number of deleted rows does
	// not match the number of archived rows. The compaction is rolled back.
	ErrArchiveIncomplete = errors.New("archive copy and delete diverged")

	// ErrConflictRetriesExhausted is returned when a mutation kept failing
	// with serialization or deadlock errors after every retry.
	ErrConflictRetriesExhausted = errors.New("transaction conflict retries exhausted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
