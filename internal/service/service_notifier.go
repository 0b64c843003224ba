// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/adapter"
	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/metrics"
	"github.com/MKhiriev/go-lead-sync/internal/render"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

// triggerGrace is added to the dispatch timeout to bound a triggered
// heartbeat, which also reads and writes the store.
const triggerGrace = 10 * time.Second

type notifierService struct {
	notificationRepository store.NotificationRepository
	dispatcher             adapter.Dispatcher
	renderer               *render.Renderer

	window          time.Duration
	dispatchTimeout time.Duration
	clock           utils.Clock

	// mu keeps heartbeats of this process from queueing on the store lock.
	mu       sync.Mutex
	triggers sync.WaitGroup

	logger *logger.Logger
}

func NewNotifierService(
	notificationRepository store.NotificationRepository,
	dispatcher adapter.Dispatcher,
	renderer *render.Renderer,
	cfg config.Notifier,
	clock utils.Clock,
	logger *logger.Logger,
) NotifierService {
	window := cfg.Window
	if window <= 0 {
		window = config.DefaultNotifyWindow
	}
	dispatchTimeout := cfg.DispatchTimeout
	if dispatchTimeout <= 0 {
		dispatchTimeout = config.DefaultDispatchTimeout
	}

	return &notifierService{
		notificationRepository: notificationRepository,
		dispatcher:             dispatcher,
		renderer:               renderer,
		window:                 window,
		dispatchTimeout:        dispatchTimeout,
		clock:                  clock,
		logger:                 logger,
	}
}

func (s *notifierService) Heartbeat(ctx context.Context) (models.HeartbeatResult, error) {
	if !s.mu.TryLock() {
		metrics.ObserveHeartbeat(metrics.NotifyBusy, 0)
		return models.HeartbeatResult{Status: models.HeartbeatBusy}, nil
	}
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	var result models.HeartbeatResult
	err := s.notificationRepository.RunNotificationCycle(ctx, func(ctx context.Context, state models.NotificationState) (models.DispatchReceipt, error) {
		result = models.HeartbeatResult{Pending: len(state.Pending)}
		if len(state.Pending) == 0 {
			result.Status = models.HeartbeatIdle
			return models.DispatchReceipt{}, nil
		}

		now := s.clock.Now()
		if wait := s.remaining(state.LastNotifiedAt, now); wait > 0 {
			result.Status = models.HeartbeatThrottled
			result.NextCycleIn = wait
			log.Info().
				Str("func", "notifierService.Heartbeat").
				Msgf("%d leads waiting, next cycle in %dm", len(state.Pending), int(math.Round(wait.Minutes())))
			return models.DispatchReceipt{}, nil
		}

		notification, err := s.renderer.Render(state.Pending, now)
		if err != nil {
			return models.DispatchReceipt{}, fmt.Errorf("%w: %w", ErrRenderingNotification, err)
		}

		dispatchCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
		defer cancel()

		if err = s.dispatcher.Dispatch(dispatchCtx, notification); err != nil {
			if !errors.Is(err, adapter.ErrDispatchFailed) {
				err = fmt.Errorf("%w: %w", adapter.ErrDispatchFailed, err)
			}
			return models.DispatchReceipt{}, err
		}

		result.Status = models.HeartbeatDispatched
		return models.DispatchReceipt{Dispatched: true, At: now}, nil
	})
	if err != nil {
		metrics.ObserveHeartbeat(metrics.NotifyFailed, result.Pending)
		log.Error().Err(err).
			Str("func", "notifierService.Heartbeat").
			Str("channel", s.dispatcher.Channel()).
			Int("pending", result.Pending).
			Msg("notification cycle failed, pending leads stay unmarked")
		return models.HeartbeatResult{}, err
	}

	metrics.ObserveHeartbeat(string(result.Status), result.Pending)
	if result.Status == models.HeartbeatDispatched {
		log.Info().
			Str("func", "notifierService.Heartbeat").
			Str("channel", s.dispatcher.Channel()).
			Int("leads", result.Pending).
			Msg("notification batch dispatched")
	}

	return result, nil
}

func (s *notifierService) Trigger(ctx context.Context) {
	s.triggers.Add(1)
	go func() {
		defer s.triggers.Done()

		triggerCtx, cancel := context.WithTimeout(logger.Detach(ctx), s.dispatchTimeout+triggerGrace)
		defer cancel()

		if _, err := s.Heartbeat(triggerCtx); err != nil {
			logger.FromContext(triggerCtx).Warn().Err(err).
				Str("func", "notifierService.Trigger").
				Msg("triggered heartbeat failed")
		}
	}()
}

func (s *notifierService) Wait() {
	s.triggers.Wait()
}

// remaining is the time left in the throttle window. A zero lastNotifiedAt
// means no batch was ever sent and the window is open.
func (s *notifierService) remaining(lastNotifiedAt, now time.Time) time.Duration {
	if lastNotifiedAt.IsZero() {
		return 0
	}
	elapsed := now.Sub(lastNotifiedAt)
	if elapsed >= s.window {
		return 0
	}
	return s.window - elapsed
}
