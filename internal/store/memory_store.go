// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/fingerprint"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

// MemoryStore keeps every table in process memory. It implements all four
// repository interfaces and is used when no database DSN is configured.
//
// A single RWMutex plays the role of both the row locks and the fingerprint
// lock: every mutation recomputes the fingerprint before releasing it.
type MemoryStore struct {
	mu     sync.RWMutex
	leads  map[int64]models.Lead
	nextID int64

	// nil until the first recompute
	fingerprint  *models.Fingerprint
	history      []models.FingerprintHistoryEntry
	historySeq   int64
	historyLimit int

	// notifyMu is the throttle lock; lastNotifiedAt itself is guarded by mu.
	notifyMu       sync.Mutex
	lastNotifiedAt time.Time

	archive    []models.ArchivedLead
	archiveSeq int64

	clock utils.Clock
}

// NewMemoryStore returns an empty store. The fingerprint stays unavailable
// until the first mutation or [MemoryStore.RecomputeFingerprint].
func NewMemoryStore(historyLimit int, clock utils.Clock) *MemoryStore {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &MemoryStore{
		leads:        make(map[int64]models.Lead),
		nextID:       1,
		historyLimit: historyLimit,
		clock:        clock,
	}
}

func (s *MemoryStore) CreateLead(_ context.Context, payload models.LeadPayload) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := models.Lead{
		ID:        s.nextID,
		Name:      payload.Name,
		Mobile:    payload.Mobile,
		Email:     cloneString(payload.Email),
		Message:   cloneString(payload.Message),
		Version:   1,
		CreatedAt: s.clock.Now(),
	}
	s.nextID++
	s.leads[lead.ID] = lead
	s.recomputeLocked()

	return cloneLead(lead), nil
}

func (s *MemoryStore) UpdateLead(_ context.Context, id int64, update models.LeadUpdate) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok || lead.IsDeleted {
		return models.Lead{}, ErrLeadNotFound
	}

	update.Apply(&lead)
	lead = cloneLead(lead)
	lead.Version++
	s.leads[id] = lead
	s.recomputeLocked()

	return cloneLead(lead), nil
}

func (s *MemoryStore) SoftDeleteLead(_ context.Context, id int64) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok || lead.IsDeleted {
		return models.Lead{}, ErrLeadNotFound
	}

	lead.IsDeleted = true
	lead.Version++
	s.leads[id] = lead
	s.recomputeLocked()

	return cloneLead(lead), nil
}

func (s *MemoryStore) GetLead(_ context.Context, id int64) (models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return models.Lead{}, ErrLeadNotFound
	}
	return cloneLead(lead), nil
}

func (s *MemoryStore) ListActiveLeads(_ context.Context) ([]models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(func(l models.Lead) bool { return !l.IsDeleted }), nil
}

func (s *MemoryStore) ListAllLeads(_ context.Context) ([]models.Lead, error) {
	s.mu.RLock()
	leads := s.collectLocked(func(models.Lead) bool { return true })
	s.mu.RUnlock()

	sort.SliceStable(leads, func(i, j int) bool {
		if !leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].CreatedAt.After(leads[j].CreatedAt)
		}
		return leads[i].ID > leads[j].ID
	})
	return leads, nil
}

func (s *MemoryStore) GetFingerprint(_ context.Context) (models.Fingerprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.fingerprint == nil {
		return models.Fingerprint{}, ErrFingerprintUnavailable
	}
	return *s.fingerprint, nil
}

func (s *MemoryStore) GetFingerprintHistory(_ context.Context) ([]models.FingerprintHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.FingerprintHistoryEntry, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		entries = append(entries, s.history[i])
	}
	return entries, nil
}

func (s *MemoryStore) RecomputeFingerprint(_ context.Context) (models.Fingerprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recomputeLocked()
	return *s.fingerprint, nil
}

func (s *MemoryStore) ActiveVersions(_ context.Context) ([]models.VersionPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activePairsLocked(), nil
}

// RunNotificationCycle calls fn without holding mu, so mutations proceed while
// a batch is dispatched. Leads created meanwhile are not in the snapshot and
// stay pending for the next cycle.
func (s *MemoryStore) RunNotificationCycle(ctx context.Context, fn NotificationCycleFunc) error {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.RLock()
	state := models.NotificationState{
		LastNotifiedAt: s.lastNotifiedAt,
		Pending:        s.collectLocked(func(l models.Lead) bool { return !l.Notified }),
	}
	s.mu.RUnlock()

	receipt, err := fn(ctx, state)
	if err != nil {
		return err
	}
	if !receipt.Dispatched || len(state.Pending) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range state.Pending {
		// the lead may have been compacted away during dispatch
		lead, ok := s.leads[p.ID]
		if !ok {
			continue
		}
		lead.Notified = true
		s.leads[p.ID] = lead
	}
	s.lastNotifiedAt = receipt.At

	return nil
}

func (s *MemoryStore) CompactDeleted(_ context.Context) ([]models.ArchivedLead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := s.collectLocked(func(l models.Lead) bool { return l.IsDeleted })
	if len(deleted) == 0 {
		return nil, nil
	}

	now := s.clock.Now()
	archived := make([]models.ArchivedLead, 0, len(deleted))
	for _, lead := range deleted {
		s.archiveSeq++
		a := models.NewArchivedLead(lead, now)
		a.ID = s.archiveSeq
		archived = append(archived, a)
	}

	s.archive = append(s.archive, archived...)
	for _, lead := range deleted {
		delete(s.leads, lead.ID)
	}
	s.recomputeLocked()

	out := make([]models.ArchivedLead, len(archived))
	copy(out, archived)
	return out, nil
}

// ArchivedLeads returns the cold-storage table in archive order.
func (s *MemoryStore) ArchivedLeads() []models.ArchivedLead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ArchivedLead, len(s.archive))
	copy(out, s.archive)
	return out
}

// recomputeLocked must be called with mu held for writing.
func (s *MemoryStore) recomputeLocked() {
	fp := models.Fingerprint{
		Value:     fingerprint.Compute(s.activePairsLocked()),
		UpdatedAt: s.clock.Now(),
	}
	s.fingerprint = &fp

	s.historySeq++
	s.history = append(s.history, models.FingerprintHistoryEntry{
		ID:          s.historySeq,
		Fingerprint: fp.Value,
		CreatedAt:   fp.UpdatedAt,
	})
	if extra := len(s.history) - s.historyLimit; extra > 0 {
		s.history = append(s.history[:0:0], s.history[extra:]...)
	}
}

func (s *MemoryStore) activePairsLocked() []models.VersionPair {
	pairs := make([]models.VersionPair, 0, len(s.leads))
	for _, lead := range s.leads {
		if !lead.IsDeleted {
			pairs = append(pairs, lead.VersionPair())
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].ID < pairs[j].ID })
	return pairs
}

// collectLocked returns clones of the leads matching keep, in ascending id
// order.
func (s *MemoryStore) collectLocked(keep func(models.Lead) bool) []models.Lead {
	out := make([]models.Lead, 0, len(s.leads))
	for _, lead := range s.leads {
		if keep(lead) {
			out = append(out, cloneLead(lead))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneLead(l models.Lead) models.Lead {
	l.Email = cloneString(l.Email)
	l.Message = cloneString(l.Message)
	l.AdminNotes = cloneString(l.AdminNotes)
	return l
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
