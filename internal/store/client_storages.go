// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories.
type ClientStorages struct {
	// SnapshotRepository is the SQLite-backed copy of the server's active
	// lead set.
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN, creating it if
// needed, applies the snapshot migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SnapshotRepository: NewSnapshotRepository(db, logger),
		db:                 db,
	}, nil
}

// Close closes the SQLite handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
