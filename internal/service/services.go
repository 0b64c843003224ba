// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/internal/adapter"
	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/render"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
)

type Services struct {
	LeadService     LeadService
	SyncService     SyncService
	NotifierService NotifierService
	ArchiveService  ArchiveService
	AppInfoService  AppInfoService
}

// NewServices wires the server services over storages. The dispatcher and
// the archive exporter are built from cfg here, so a misconfigured channel
// or bucket fails startup.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	clock := utils.SystemClock{}

	dispatcher, err := adapter.NewDispatcher(cfg.Notifier, cfg.App.HashKey, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating dispatcher: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.Notifier.Subject, cfg.Notifier.DashboardURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating renderer: %w", err)
	}

	exporter, err := adapter.NewS3Exporter(ctx, cfg.Archive, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating archive exporter: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	notifier := NewNotifierService(storages.NotificationRepository, dispatcher, renderer, cfg.Notifier, clock, logger)
	leads := NewLeadValidationService().Wrap(NewLeadService(storages.LeadRepository, notifier, logger))

	return &Services{
		LeadService:     leads,
		SyncService:     NewSyncService(storages.LeadRepository, storages.FingerprintRepository, notifier, clock, logger),
		NotifierService: notifier,
		ArchiveService:  NewArchiveService(storages.ArchiveRepository, exporter, logger),
		AppInfoService:  appInfo,
	}, nil
}
