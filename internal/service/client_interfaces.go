// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lead-sync/models"
)

// ClientSyncService defines the client side of the reconciliation protocol.
type ClientSyncService interface {
	// Sync runs one poll. Round one sends only the fingerprint of the local
	// snapshot; on mismatch round two sends the full version map and the
	// returned diff is applied to the snapshot.
	// Returns an error if the server call or the local store fails.
	Sync(ctx context.Context) (models.ClientSyncReport, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically calls Sync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs once right
	// away and then every interval, defaulting to 30 seconds if interval is
	// zero or negative. Any previously running job is stopped before the
	// new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
