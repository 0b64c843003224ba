// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-lead-sync/models"
)

// LeadService owns lead mutations. Every committed mutation triggers a
// notifier heartbeat.
type LeadService interface {
	Create(ctx context.Context, payload models.LeadPayload) (models.Lead, error)
	Update(ctx context.Context, id int64, update models.LeadUpdate) (models.Lead, error)
	SoftDelete(ctx context.Context, id int64) (models.Lead, error)
	// List returns every lead, newest first, deleted ones included.
	List(ctx context.Context) ([]models.Lead, error)
}

// LeadServiceWrapper defines middleware composition for LeadService.
// Implementations wrap an existing LeadService to add behavior such as
// normalization or validation.
type LeadServiceWrapper interface {
	Wrap(LeadService) LeadService
}

// SyncService answers both rounds of the reconciliation protocol.
type SyncService interface {
	// Check compares fingerprint with the server's. An uninitialized server
	// fingerprint is a mismatch, never an error.
	Check(ctx context.Context, fingerprint string) (models.SyncStatus, error)
	// Diff computes the delta from the client's version map to the active
	// set. It does not compare fingerprints.
	Diff(ctx context.Context, req models.SyncRequest) (models.DiffResponse, error)
	// Sync is the combined endpoint: in sync when the fingerprints match,
	// mismatch when they do not and no version map was sent, diff otherwise.
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	Fingerprint(ctx context.Context) (models.Fingerprint, error)
	History(ctx context.Context) ([]models.FingerprintHistoryEntry, error)

	// Audit recomputes the fingerprint from scratch and compares it with
	// the persisted value. It never writes.
	Audit(ctx context.Context) (models.FingerprintAudit, error)
}

// NotifierService runs the throttled batch notifier.
type NotifierService interface {
	// Heartbeat runs one notification cycle. Concurrent heartbeats of the
	// same process return HeartbeatBusy instead of waiting.
	Heartbeat(ctx context.Context) (models.HeartbeatResult, error)
	// Trigger runs a heartbeat in the background on a context detached from
	// ctx and only logs its failure.
	Trigger(ctx context.Context)
	// Wait blocks until every triggered heartbeat has returned.
	Wait()
}

// ArchiveService compacts soft-deleted leads into cold storage.
type ArchiveService interface {
	Compact(ctx context.Context) (models.CompactionResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
