// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound edges of lead-sync.
//
// [ServerAdapter] is the sync client's view of the server; the package ships
// an HTTP/REST implementation ([NewHTTPServerAdapter]). [Dispatcher] delivers
// rendered notification batches over log, SMTP or a signed webhook.
// [Exporter] writes archived leads to S3-compatible object storage.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-lead-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the lead-sync
// server. Implementations attach the admin bearer token to every request and
// map transport-level errors to the sentinel values of this package.
type ServerAdapter interface {
	// Sync sends one sync round. A request with nil Versions is round one
	// and yields InSync or Mismatch; a request with a version map yields a
	// diff, or InSync when the fingerprints already match.
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// Version returns the server's reported application version.
	Version(ctx context.Context) (string, error)
}

// Dispatcher delivers one rendered notification batch. A returned error
// means the batch was not delivered and must be retried by a later cycle.
type Dispatcher interface {
	Dispatch(ctx context.Context, n models.Notification) error
	// Channel names the delivery channel for logs and metrics.
	Channel() string
}

// Exporter writes a compacted batch to cold object storage and returns the
// object key.
type Exporter interface {
	Export(ctx context.Context, archived []models.ArchivedLead) (string, error)
}
