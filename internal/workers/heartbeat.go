// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/service"
	"github.com/MKhiriev/go-lead-sync/models"
)

// HeartbeatWorker runs a notifier heartbeat on a fixed interval, so pending
// leads are flushed once the throttle window reopens even when no request
// arrives. The first heartbeat runs at start and flushes whatever a previous
// process left pending.
type HeartbeatWorker struct {
	notifier service.NotifierService
	interval time.Duration

	logger *logger.Logger
}

func NewHeartbeatWorker(notifier service.NotifierService, interval time.Duration, logger *logger.Logger) *HeartbeatWorker {
	if interval <= 0 {
		interval = config.DefaultHeartbeatInterval
	}
	return &HeartbeatWorker{notifier: notifier, interval: interval, logger: logger}
}

func (w *HeartbeatWorker) Name() string { return "heartbeat" }

func (w *HeartbeatWorker) Run(ctx context.Context) {
	runEvery(ctx, w.interval, true, w.beat)
}

func (w *HeartbeatWorker) beat(ctx context.Context) {
	result, err := w.notifier.Heartbeat(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "*HeartbeatWorker.beat").Msg("heartbeat failed, batch stays pending")
		}
		return
	}

	if result.Status == models.HeartbeatDispatched {
		w.logger.Info().Int("pending", result.Pending).Msg("heartbeat dispatched a batch")
		return
	}
	w.logger.Debug().Str("status", string(result.Status)).Int("pending", result.Pending).Msg("heartbeat")
}
