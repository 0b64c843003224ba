// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/service"
)

// FingerprintAuditWorker periodically compares the persisted fingerprint
// with one recomputed from the active set. It only reports; the service
// logs a desync as a warning and records it in metrics.
type FingerprintAuditWorker struct {
	syncService service.SyncService
	interval    time.Duration

	logger *logger.Logger
}

func NewFingerprintAuditWorker(syncService service.SyncService, interval time.Duration, logger *logger.Logger) *FingerprintAuditWorker {
	if interval <= 0 {
		interval = config.DefaultAuditInterval
	}
	return &FingerprintAuditWorker{syncService: syncService, interval: interval, logger: logger}
}

func (w *FingerprintAuditWorker) Name() string { return "fingerprint_audit" }

func (w *FingerprintAuditWorker) Run(ctx context.Context) {
	runEvery(ctx, w.interval, false, w.audit)
}

func (w *FingerprintAuditWorker) audit(ctx context.Context) {
	result, err := w.syncService.Audit(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "*FingerprintAuditWorker.audit").Msg("fingerprint audit failed")
		}
		return
	}

	w.logger.Debug().
		Bool("in_sync", result.InSync).
		Int("active", result.Active).
		Msg("fingerprint audit finished")
}
