// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-lead-sync/models"
)

// LeadRepository owns the lead rows. Every mutation commits together with a
// recomputed global fingerprint; if the recompute fails the mutation does not
// happen.
type LeadRepository interface {
	CreateLead(ctx context.Context, payload models.LeadPayload) (models.Lead, error)
	// UpdateLead applies update and increments the version. Unknown and
	// soft-deleted ids yield ErrLeadNotFound.
	UpdateLead(ctx context.Context, id int64, update models.LeadUpdate) (models.Lead, error)
	// SoftDeleteLead marks the lead deleted and increments the version.
	SoftDeleteLead(ctx context.Context, id int64) (models.Lead, error)
	GetLead(ctx context.Context, id int64) (models.Lead, error)
	// ListActiveLeads returns non-deleted leads in ascending id order.
	ListActiveLeads(ctx context.Context) ([]models.Lead, error)
	// ListAllLeads returns every lead, newest first.
	ListAllLeads(ctx context.Context) ([]models.Lead, error)
}

// FingerprintRepository exposes the persisted fingerprint and its history.
type FingerprintRepository interface {
	GetFingerprint(ctx context.Context) (models.Fingerprint, error)
	// GetFingerprintHistory returns the retained entries, newest first.
	GetFingerprintHistory(ctx context.Context) ([]models.FingerprintHistoryEntry, error)
	// RecomputeFingerprint rebuilds the fingerprint from the active set in
	// its own transaction. Used to seed an empty store.
	RecomputeFingerprint(ctx context.Context) (models.Fingerprint, error)
	// ActiveVersions reads the (id, version) pairs of the active set.
	ActiveVersions(ctx context.Context) ([]models.VersionPair, error)
}

// NotificationCycleFunc decides on one notification cycle. It runs while the
// store holds the throttle lock. Returning an error, or a receipt with
// Dispatched == false, leaves the pending leads and the throttle untouched.
type NotificationCycleFunc func(ctx context.Context, state models.NotificationState) (models.DispatchReceipt, error)

// NotificationRepository serializes notification cycles.
type NotificationRepository interface {
	RunNotificationCycle(ctx context.Context, fn NotificationCycleFunc) error
}

// ArchiveRepository moves soft-deleted leads to cold storage.
type ArchiveRepository interface {
	// CompactDeleted copies every soft-deleted lead into the archive,
	// removes exactly the copied rows and recomputes the fingerprint, all in
	// one transaction. It returns the archived rows.
	CompactDeleted(ctx context.Context) ([]models.ArchivedLead, error)
}
