// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lead-sync/models"
)

// system_config keys
const (
	configKeyFingerprint  = "global_fingerprint"
	configKeyLastNotified = "last_notified_at"
)

// Advisory lock keys. The fingerprint lock serializes the recompute step of
// every mutation; the archive lock serializes compactions.
const (
	fingerprintLockKey int64 = 0x6c65_6164_0001
	archiveLockKey     int64 = 0x6c65_6164_0002
)

const leadColumns = `id, name, mobile, email, message, contacted, visited, admin_notes, version, is_deleted, notified, created_at`

const (
	insertLead = `INSERT INTO leads (name, mobile, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + leadColumns

	softDeleteLead = `UPDATE leads
		SET is_deleted = TRUE, version = version + 1
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + leadColumns

	selectLeadByID = `SELECT ` + leadColumns + `
		FROM leads
		WHERE id = $1`

	selectActiveLeads = `SELECT ` + leadColumns + `
		FROM leads
		WHERE is_deleted = FALSE
		ORDER BY id`

	selectAllLeads = `SELECT ` + leadColumns + `
		FROM leads
		ORDER BY created_at DESC, id DESC`

	selectPendingLeads = `SELECT ` + leadColumns + `
		FROM leads
		WHERE notified = FALSE
		ORDER BY id`

	selectActiveVersions = `SELECT id, version
		FROM leads
		WHERE is_deleted = FALSE
		ORDER BY id`

	lockAdvisory = `SELECT pg_advisory_xact_lock($1)`

	upsertConfig = `INSERT INTO system_config (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		RETURNING updated_at`

	selectConfig = `SELECT value, updated_at
		FROM system_config
		WHERE key = $1`

	ensureConfig = `INSERT INTO system_config (key, value)
		VALUES ($1, '')
		ON CONFLICT (key) DO NOTHING`

	lockConfig = `SELECT value
		FROM system_config
		WHERE key = $1
		FOR UPDATE`

	insertFingerprintHistory = `INSERT INTO fingerprint_history (fingerprint) VALUES ($1)`

	trimFingerprintHistory = `DELETE FROM fingerprint_history
		WHERE id NOT IN (SELECT id FROM fingerprint_history ORDER BY id DESC LIMIT $1)`

	selectFingerprintHistory = `SELECT id, fingerprint, created_at
		FROM fingerprint_history
		ORDER BY id DESC
		LIMIT $1`

	archiveDeletedLeads = `INSERT INTO archived_leads (
			original_id, name, mobile, email, message, contacted, visited,
			admin_notes, lead_created_at, version
		)
		SELECT id, name, mobile, email, message, contacted, visited,
			admin_notes, created_at, version
		FROM leads
		WHERE is_deleted = TRUE
		ORDER BY id
		RETURNING id, original_id, name, mobile, email, message, contacted, visited,
			admin_notes, lead_created_at, version, archived_at`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateLeadQuery builds the partial UPDATE for an admin edit. The
// version is always incremented from the committed value; the row is
// locked by the UPDATE itself.
func buildUpdateLeadQuery(id int64, update models.LeadUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.Update("leads")

	if update.Contacted != nil {
		builder = builder.Set("contacted", *update.Contacted)
	}
	if update.Visited != nil {
		builder = builder.Set("visited", *update.Visited)
	}
	if update.AdminNotes != nil {
		builder = builder.Set("admin_notes", *update.AdminNotes)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Message != nil {
		builder = builder.Set("message", *update.Message)
	}

	query, args, err := builder.
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": id}).
		Where("is_deleted = FALSE").
		Suffix("RETURNING " + leadColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildMarkNotifiedQuery flags the leads folded into a dispatched batch.
// The version is deliberately left alone: notification bookkeeping is not a
// change clients need to sync.
func buildMarkNotifiedQuery(ids []int64) (string, []any, error) {
	query, args, err := psql.Update("leads").
		Set("notified", true).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteArchivedQuery removes exactly the rows copied to the archive.
func buildDeleteArchivedQuery(ids []int64) (string, []any, error) {
	query, args, err := psql.Delete("leads").
		Where(sq.Eq{"id": ids}).
		Where("is_deleted = TRUE").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
