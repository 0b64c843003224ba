// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
)

const defaultClientSyncInterval = 30 * time.Second

type clientSyncJob struct {
	syncService ClientSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls Sync immediately and every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultClientSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	if _, err := j.syncService.Sync(ctx); err != nil && ctx.Err() == nil {
		j.logger.Error().Err(err).
			Str("func", "clientSyncJob.runOnce").
			Msg("sync failed, retrying on next tick")
	}
}
