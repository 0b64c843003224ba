// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/adapter"
	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/service"
	"github.com/MKhiriev/go-lead-sync/internal/store"
)

// App is the sync client: it keeps the local snapshot in step with the
// server until its context is cancelled.
type App struct {
	serverAdapter adapter.ServerAdapter
	storages      *store.ClientStorages
	services      *service.ClientServices

	version      string
	syncInterval time.Duration
	logger       *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp dials the server, opens the local snapshot and wires the client
// services. version is the client's own version, reported next to the
// server's on start; cfg.Version overrides it when set.
func NewApp(ctx context.Context, cfg *config.ClientConfig, version string, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		_ = closeAdapter(serverAdapter)
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	if cfg.Version != "" {
		version = cfg.Version
	}

	return newApp(serverAdapter, storages, version, cfg.Workers.SyncInterval, logger), nil
}

func newApp(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, version string, syncInterval time.Duration, logger *logger.Logger) *App {
	return &App{
		serverAdapter: serverAdapter,
		storages:      storages,
		services:      service.NewClientServices(storages, serverAdapter, logger),
		version:       version,
		syncInterval:  syncInterval,
		logger:        logger,
	}
}

// Run logs the server version, starts the sync job and blocks until ctx is
// done. An unreachable server is not fatal: the job retries on every tick.
func (a *App) Run(ctx context.Context) error {
	if serverVersion, err := a.serverAdapter.Version(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server version is unavailable")
	} else {
		a.logger.Info().
			Str("server_version", serverVersion).
			Str("client_version", a.version).
			Msg("connected")
	}

	a.services.SyncJob.Start(ctx, a.syncInterval)
	<-ctx.Done()
	a.services.SyncJob.Stop()

	a.logger.Info().Msg("lead-sync client stopped")
	return nil
}

// Close releases the transport and the local storage.
func (a *App) Close() error {
	return errors.Join(closeAdapter(a.serverAdapter), a.storages.Close())
}

func closeAdapter(serverAdapter adapter.ServerAdapter) error {
	if closer, ok := serverAdapter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
