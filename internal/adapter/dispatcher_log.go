// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

type logDispatcher struct {
	logger *logger.Logger
}

// NewLogDispatcher returns a [Dispatcher] that only writes the batch to the
// log. It never fails.
func NewLogDispatcher(logger *logger.Logger) Dispatcher {
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) Dispatch(_ context.Context, n models.Notification) error {
	d.logger.Info().
		Str("func", "logDispatcher.Dispatch").
		Str("subject", n.Subject).
		Ints64("lead_ids", n.LeadIDs).
		Msg("notification delivery disabled, batch logged only")
	return nil
}

func (d *logDispatcher) Channel() string {
	return config.ChannelLog
}
