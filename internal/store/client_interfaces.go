// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lead-sync/models"
)

// SnapshotRepository is the sync client's local copy of the active lead set.
type SnapshotRepository interface {
	// Versions returns the id→version map of the snapshot. It is never nil,
	// so an empty snapshot still produces a round two request.
	Versions(ctx context.Context) (map[int64]int64, error)
	// ListLeads returns the snapshot in ascending id order.
	ListLeads(ctx context.Context) ([]models.Lead, error)
	// ApplyDiff upserts diff.Updates, removes diff.Deletions and records
	// diff.ServerTime as the last sync time, in one transaction.
	ApplyDiff(ctx context.Context, diff models.DiffResponse) error
	// MarkSynced records at as the last sync time without touching rows.
	MarkSynced(ctx context.Context, at time.Time) error
	// LastSyncedAt is zero before the first successful sync.
	LastSyncedAt(ctx context.Context) (time.Time, error)
}
