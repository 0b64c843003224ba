// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

// SignatureHeader carries the hex HMAC-SHA256 of the webhook body.
const SignatureHeader = "X-Signature-SHA256"

type webhookDispatcher struct {
	client  *utils.HTTPClient
	url     string
	hashKey string

	logger *logger.Logger
}

// NewWebhookDispatcher returns a [Dispatcher] that POSTs the notification as
// JSON to cfg.Webhook.URL. When hashKey is set the body is signed and the
// signature sent in [SignatureHeader].
func NewWebhookDispatcher(cfg config.Notifier, hashKey string, logger *logger.Logger) (Dispatcher, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.Webhook.URL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid webhook url %q", cfg.Webhook.URL)
	}

	return &webhookDispatcher{
		client:  utils.NewHTTPClient(cfg.DispatchTimeout),
		url:     u.String(),
		hashKey: hashKey,
		logger:  logger,
	}, nil
}

func (d *webhookDispatcher) Dispatch(ctx context.Context, n models.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: encode payload: %w", ErrDispatchFailed, err)
	}

	req := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if d.hashKey != "" {
		req.SetHeader(SignatureHeader, utils.SignPayload(body, d.hashKey))
	}

	resp, err := req.Post(d.url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	d.logger.Info().
		Str("func", "webhookDispatcher.Dispatch").
		Int("status", resp.StatusCode()).
		Int("leads", len(n.LeadIDs)).
		Msg("notification posted to webhook")
	return nil
}

func (d *webhookDispatcher) Channel() string {
	return config.ChannelWebhook
}
