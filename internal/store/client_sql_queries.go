// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const syncStateKeyLastSynced = "last_synced_at"

const snapshotColumns = `id, name, mobile, email, message, contacted, visited, admin_notes, version, notified, created_at`

const (
	upsertSnapshotLead = `
		INSERT INTO snapshot_leads (` + snapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			mobile = excluded.mobile,
			email = excluded.email,
			message = excluded.message,
			contacted = excluded.contacted,
			visited = excluded.visited,
			admin_notes = excluded.admin_notes,
			version = excluded.version,
			notified = excluded.notified,
			created_at = excluded.created_at;`

	selectSnapshotVersions = `SELECT id, version FROM snapshot_leads;`

	selectSnapshotLeads = `
		SELECT ` + snapshotColumns + `
		FROM snapshot_leads
		ORDER BY id;`

	upsertSyncState = `
		INSERT INTO sync_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	selectSyncState = `SELECT value FROM sync_state WHERE key = ?;`
)

// buildDeleteSnapshotQuery removes the given ids from the snapshot.
func buildDeleteSnapshotQuery(ids []int64) (string, []any, error) {
	query, args, err := sq.Delete("snapshot_leads").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
