// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

// mailSender is the part of *mail.Client the dispatcher drives.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// newSenderFunc builds a sender whose every network operation is bounded by
// timeout.
type newSenderFunc func(timeout time.Duration) (mailSender, error)

type smtpDispatcher struct {
	from      string
	recipient string

	newSender newSenderFunc
	now       func() time.Time

	logger *logger.Logger
}

// NewSMTPDispatcher returns a [Dispatcher] that mails the batch as a
// multipart/alternative message with a plain-text and an HTML part. PLAIN
// auth is used only when a username is configured.
func NewSMTPDispatcher(cfg config.Notifier, logger *logger.Logger) (Dispatcher, error) {
	port := cfg.SMTP.Port
	if port == 0 {
		port = 587
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTP.Username),
			mail.WithPassword(cfg.SMTP.Password),
		)
	}

	newSender := func(timeout time.Duration) (mailSender, error) {
		return mail.NewClient(cfg.SMTP.Host, append(slices.Clip(opts), mail.WithTimeout(timeout))...)
	}

	// fail at startup on a host or port the client rejects
	if _, err := newSender(config.DefaultDispatchTimeout); err != nil {
		return nil, fmt.Errorf("invalid smtp settings: %w", err)
	}

	return &smtpDispatcher{
		from:      cfg.From,
		recipient: cfg.Recipient,
		newSender: newSender,
		now:       time.Now,
		logger:    logger,
	}, nil
}

// Dispatch implements [Dispatcher]. The send runs on the calling goroutine
// with the dial bound to ctx and every read and write bound to the time left
// until ctx's deadline, so no delivery can happen after Dispatch returned.
func (d *smtpDispatcher) Dispatch(ctx context.Context, n models.Notification) error {
	msg, err := d.buildMessage(n)
	if err != nil {
		return fmt.Errorf("%w: build message: %w", ErrDispatchFailed, err)
	}

	timeout := config.DefaultDispatchTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if err = ctx.Err(); err != nil || timeout <= 0 {
		return fmt.Errorf("%w: smtp: %w", ErrDispatchFailed, context.DeadlineExceeded)
	}

	sender, err := d.newSender(timeout)
	if err != nil {
		return fmt.Errorf("%w: smtp client: %w", ErrDispatchFailed, err)
	}
	if err = sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: smtp: %w", ErrDispatchFailed, err)
	}

	d.logger.Info().
		Str("func", "smtpDispatcher.Dispatch").
		Str("recipient", d.recipient).
		Int("leads", len(n.LeadIDs)).
		Msg("notification mailed")
	return nil
}

func (d *smtpDispatcher) Channel() string {
	return config.ChannelSMTP
}

func (d *smtpDispatcher) buildMessage(n models.Notification) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(d.from); err != nil {
		return nil, fmt.Errorf("from %q: %w", d.from, err)
	}
	if err := msg.To(d.recipient); err != nil {
		return nil, fmt.Errorf("recipient %q: %w", d.recipient, err)
	}
	msg.Subject(n.Subject)
	msg.SetDateWithValue(d.now())
	msg.SetBodyString(mail.TypeTextPlain, n.TextBody)
	msg.AddAlternativeString(mail.TypeTextHTML, n.HTMLBody)

	return msg, nil
}
