// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-lead-sync/internal/adapter"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/metrics"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/models"
)

type archiveService struct {
	archiveRepository store.ArchiveRepository
	// nil disables the object-storage export
	exporter adapter.Exporter

	logger *logger.Logger
}

func NewArchiveService(archiveRepository store.ArchiveRepository, exporter adapter.Exporter, logger *logger.Logger) ArchiveService {
	return &archiveService{
		archiveRepository: archiveRepository,
		exporter:          exporter,
		logger:            logger,
	}
}

// Compact moves soft-deleted leads to the archive table and, when an
// exporter is configured, writes the batch to object storage. The archive
// table already holds the rows, so an export failure is only logged.
func (s *archiveService) Compact(ctx context.Context) (models.CompactionResult, error) {
	archived, err := s.archiveRepository.CompactDeleted(ctx)
	if err != nil {
		return models.CompactionResult{}, err
	}

	result := models.CompactionResult{Archived: len(archived)}
	if len(archived) == 0 {
		return result, nil
	}

	metrics.AddArchived(len(archived))
	log := logger.FromContext(ctx)
	log.Info().
		Str("func", "archiveService.Compact").
		Int("archived", len(archived)).
		Msg("soft-deleted leads archived")

	if s.exporter == nil {
		return result, nil
	}

	key, err := s.exporter.Export(ctx, archived)
	if err != nil {
		log.Error().Err(err).
			Str("func", "archiveService.Compact").
			Msg("archive export failed, rows remain in the archive table")
		return result, nil
	}

	result.ExportKey = key
	return result, nil
}
