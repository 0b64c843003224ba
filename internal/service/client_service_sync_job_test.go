// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

// spySyncService counts Sync calls.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) Sync(context.Context) (models.ClientSyncReport, error) {
	s.calls.Add(1)
	return models.ClientSyncReport{}, s.err
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, logger.Nop())
	require.NotNil(t, job)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_SyncsImmediately(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestClientSyncJob_Start_CallsSyncOnTicks(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, logger.Nop())

	// 10ms interval, ~5 ticks in 55ms plus the immediate run
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync should be called several times, called: %d", got)
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls expected after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_ErrorsDoNotStopJob(t *testing.T) {
	spy := &spySyncService{err: errors.New("server down")}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	require.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestClientSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond)
	cancel()

	assert.NotPanics(t, func() { job.Stop() })
}
