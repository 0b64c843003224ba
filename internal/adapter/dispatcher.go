// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
)

// NewDispatcher builds the [Dispatcher] selected by cfg.Channel. A disabled
// notifier always gets the log dispatcher, so batches are still marked as
// delivered and the throttle keeps advancing.
func NewDispatcher(cfg config.Notifier, hashKey string, logger *logger.Logger) (Dispatcher, error) {
	if !cfg.Enabled {
		return NewLogDispatcher(logger), nil
	}

	switch cfg.Channel {
	case "", config.ChannelLog:
		return NewLogDispatcher(logger), nil
	case config.ChannelSMTP:
		return NewSMTPDispatcher(cfg, logger)
	case config.ChannelWebhook:
		return NewWebhookDispatcher(cfg, hashKey, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, cfg.Channel)
	}
}
