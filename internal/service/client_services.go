// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-lead-sync/internal/adapter"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
)

type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(localStore.SnapshotRepository, serverAdapter, utils.SystemClock{}, logger)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, logger),
	}
}
