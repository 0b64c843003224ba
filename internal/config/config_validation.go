// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. A zero config is valid: every
// check is tied to a feature that the config turns on.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.HistoryLimit < 0 {
		return fmt.Errorf("%w: history limit must not be negative", ErrInvalidStorageConfigs)
	}

	if (cfg.Server.HTTPAddress != "" || cfg.Server.GRPCAddress != "") && cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required to serve admin routes", ErrInvalidAppConfigs)
	}

	if cfg.Workers.HeartbeatInterval < 0 || cfg.Workers.AuditInterval < 0 || cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return cfg.Notifier.validate()
}

func (n *Notifier) validate() error {
	if n.Window < 0 {
		return fmt.Errorf("%w: window must not be negative", ErrInvalidNotifierConfigs)
	}

	if !n.Enabled {
		return nil
	}

	switch n.Channel {
	case "", ChannelLog:
		return nil
	case ChannelSMTP:
		if n.SMTP.Host == "" || n.Recipient == "" || n.From == "" {
			return fmt.Errorf("%w: smtp channel needs host, sender and recipient", ErrInvalidNotifierConfigs)
		}
	case ChannelWebhook:
		if n.Webhook.URL == "" {
			return fmt.Errorf("%w: webhook channel needs a url", ErrInvalidNotifierConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidNotifierConfigs, n.Channel)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if (cfg.Adapter.HTTPAddress == "" && cfg.Adapter.GRPCAddress == "") || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
