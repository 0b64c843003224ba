// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/service"
)

// Workers runs a set of workers, each in its own goroutine.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewWorkers builds the server's background workers from services.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewHeartbeatWorker(services.NotifierService, cfg.HeartbeatInterval, logger),
			NewFingerprintAuditWorker(services.SyncService, cfg.AuditInterval, logger),
		},
		logger: logger,
	}
}

// Start launches every worker. Workers stop when ctx is cancelled or Stop is
// called. Starting running workers again restarts them.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			worker.Run(runCtx)
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
		}(worker)
	}
}

// Stop cancels every worker and waits for them to return. It is a no-op when
// nothing runs.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
