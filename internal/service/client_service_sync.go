// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-lead-sync/internal/adapter"
	"github.com/MKhiriev/go-lead-sync/internal/fingerprint"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

type clientSyncService struct {
	snapshot store.SnapshotRepository
	adapter  adapter.ServerAdapter
	clock    utils.Clock

	logger *logger.Logger
}

func NewClientSyncService(snapshot store.SnapshotRepository, serverAdapter adapter.ServerAdapter, clock utils.Clock, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		snapshot: snapshot,
		adapter:  serverAdapter,
		clock:    clock,
		logger:   logger,
	}
}

func (s *clientSyncService) Sync(ctx context.Context) (models.ClientSyncReport, error) {
	versions, err := s.snapshot.Versions(ctx)
	if err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("read local versions: %w", err)
	}
	if versions == nil {
		versions = map[int64]int64{}
	}
	localFingerprint := fingerprint.FromVersions(versions)

	resp, err := s.adapter.Sync(ctx, models.SyncRequest{Fingerprint: localFingerprint})
	if err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("sync round one: %w", err)
	}
	if resp.InSync {
		return s.inSync(ctx, 1)
	}
	if !resp.Mismatch {
		return models.ClientSyncReport{}, ErrUnexpectedSyncResponse
	}

	resp, err = s.adapter.Sync(ctx, models.SyncRequest{Fingerprint: localFingerprint, Versions: versions})
	if err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("sync round two: %w", err)
	}
	// the server may have converged to our state between the rounds
	if resp.InSync {
		return s.inSync(ctx, 2)
	}
	if resp.DiffResponse == nil {
		return models.ClientSyncReport{}, ErrUnexpectedSyncResponse
	}

	if err = s.snapshot.ApplyDiff(ctx, *resp.DiffResponse); err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("apply diff: %w", err)
	}

	report := models.ClientSyncReport{
		Updated:   len(resp.Updates),
		Deleted:   len(resp.Deletions),
		SyncedAt:  resp.ServerTime,
		RoundsRun: 2,
	}

	diverged, err := s.diverged(ctx, resp.Fingerprint)
	if err != nil {
		return models.ClientSyncReport{}, err
	}
	if diverged {
		return s.rebuild(ctx)
	}

	s.logger.Info().
		Str("func", "clientSyncService.Sync").
		Int("updated", report.Updated).
		Int("deleted", report.Deleted).
		Msg("local snapshot updated")

	return report, nil
}

// diverged reports whether the patched snapshot still misses the fingerprint
// the diff was computed against. Only versions ahead of the server's survive
// a diff, and no later diff removes them.
func (s *clientSyncService) diverged(ctx context.Context, serverFingerprint string) (bool, error) {
	if serverFingerprint == "" {
		return false, nil
	}

	versions, err := s.snapshot.Versions(ctx)
	if err != nil {
		return false, fmt.Errorf("read local versions: %w", err)
	}
	return fingerprint.FromVersions(versions) != serverFingerprint, nil
}

// rebuild replaces the snapshot with the server's full active set: a round
// two with an empty version map returns every active lead, and every local id
// outside that set is deleted.
func (s *clientSyncService) rebuild(ctx context.Context) (models.ClientSyncReport, error) {
	versions, err := s.snapshot.Versions(ctx)
	if err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("read local versions: %w", err)
	}

	resp, err := s.adapter.Sync(ctx, models.SyncRequest{
		Fingerprint: fingerprint.FromVersions(versions),
		Versions:    map[int64]int64{},
	})
	if err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("sync rebuild: %w", err)
	}
	if resp.InSync {
		return s.inSync(ctx, 3)
	}
	if resp.DiffResponse == nil {
		return models.ClientSyncReport{}, ErrUnexpectedSyncResponse
	}

	full := *resp.DiffResponse
	keep := make(map[int64]struct{}, len(full.Updates))
	for _, lead := range full.Updates {
		keep[lead.ID] = struct{}{}
	}
	full.Deletions = make([]int64, 0)
	for id := range versions {
		if _, ok := keep[id]; !ok {
			full.Deletions = append(full.Deletions, id)
		}
	}
	slices.Sort(full.Deletions)

	if err = s.snapshot.ApplyDiff(ctx, full); err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("apply rebuild: %w", err)
	}

	s.logger.Warn().
		Str("func", "clientSyncService.rebuild").
		Int("leads", len(full.Updates)).
		Int("dropped", len(full.Deletions)).
		Msg("local snapshot diverged from the server, rebuilt")

	return models.ClientSyncReport{
		Updated:   len(full.Updates),
		Deleted:   len(full.Deletions),
		SyncedAt:  full.ServerTime,
		RoundsRun: 3,
		Rebuilt:   true,
	}, nil
}

func (s *clientSyncService) inSync(ctx context.Context, rounds int) (models.ClientSyncReport, error) {
	now := s.clock.Now()
	if err := s.snapshot.MarkSynced(ctx, now); err != nil {
		return models.ClientSyncReport{}, fmt.Errorf("mark synced: %w", err)
	}

	s.logger.Debug().
		Str("func", "clientSyncService.Sync").
		Int("rounds", rounds).
		Msg("local snapshot in sync")

	return models.ClientSyncReport{InSync: true, SyncedAt: now, RoundsRun: rounds}, nil
}
