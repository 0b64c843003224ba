// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
)

// Storages groups the server-side repositories handed to the service layer.
type Storages struct {
	LeadRepository         LeadRepository
	FingerprintRepository  FingerprintRepository
	NotificationRepository NotificationRepository
	ArchiveRepository      ArchiveRepository

	close func() error
}

// NewStorages initialises the server storage layer:
//  1. An empty DSN selects the in-memory store.
//  2. Otherwise it connects to PostgreSQL and applies pending migrations.
//  3. The fingerprint is seeded when it has never been computed, so an
//     empty store already answers sync requests with the empty-set hash.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	var storages *Storages
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database DSN configured, using in-memory store")
		storages = NewMemoryStorages(NewMemoryStore(cfg.HistoryLimit, utils.SystemClock{}))
	} else {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages = &Storages{
			LeadRepository:         NewLeadRepository(db, cfg.HistoryLimit, log),
			FingerprintRepository:  NewFingerprintRepository(db, cfg.HistoryLimit, log),
			NotificationRepository: NewNotificationRepository(db, log),
			ArchiveRepository:      NewArchiveRepository(db, cfg.HistoryLimit, log),
			close:                  db.Close,
		}
	}

	if err := storages.seedFingerprint(ctx); err != nil {
		_ = storages.Close()
		return nil, err
	}

	return storages, nil
}

// NewMemoryStorages exposes one [MemoryStore] through every repository.
func NewMemoryStorages(m *MemoryStore) *Storages {
	return &Storages{
		LeadRepository:         m,
		FingerprintRepository:  m,
		NotificationRepository: m,
		ArchiveRepository:      m,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func (s *Storages) seedFingerprint(ctx context.Context) error {
	_, err := s.FingerprintRepository.GetFingerprint(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrFingerprintUnavailable) {
		return fmt.Errorf("read fingerprint: %w", err)
	}

	fp, err := s.FingerprintRepository.RecomputeFingerprint(ctx)
	if err != nil {
		return fmt.Errorf("seed fingerprint: %w", err)
	}
	logger.FromContext(ctx).Info().
		Str("func", "Storages.seedFingerprint").
		Str("fingerprint", fp.Value).
		Msg("fingerprint seeded")

	return nil
}
