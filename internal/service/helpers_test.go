// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lead-sync/internal/render"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

var testStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// stubNotifier counts triggers and never dispatches.
type stubNotifier struct {
	triggers atomic.Int64
}

func (s *stubNotifier) Heartbeat(context.Context) (models.HeartbeatResult, error) {
	return models.HeartbeatResult{Status: models.HeartbeatIdle}, nil
}

func (s *stubNotifier) Trigger(context.Context) { s.triggers.Add(1) }

func (s *stubNotifier) Wait() {}

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.NewRenderer("New Leads", "", nil)
	require.NoError(t, err)
	return r
}

func newMemory(t *testing.T) (*store.MemoryStore, *utils.ManualClock) {
	t.Helper()
	clock := utils.NewManualClock(testStart)
	return store.NewMemoryStore(10, clock), clock
}

func createLeads(t *testing.T, s *store.MemoryStore, n int) []models.Lead {
	t.Helper()
	leads := make([]models.Lead, 0, n)
	for i := 0; i < n; i++ {
		lead, err := s.CreateLead(context.Background(), models.LeadPayload{Name: "lead", Mobile: "5551234567"})
		require.NoError(t, err)
		leads = append(leads, lead)
	}
	return leads
}
