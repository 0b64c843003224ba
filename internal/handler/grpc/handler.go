// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the leadsync.SyncService gRPC transport. It serves
// both sync rounds to admin clients that prefer a persistent connection over
// REST polling.
package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/rpc"
	"github.com/MKhiriev/go-lead-sync/internal/service"
	"github.com/MKhiriev/go-lead-sync/models"
)

// Handler is the root gRPC transport handler. It implements
// [rpc.SyncServer] on top of the service layer.
type Handler struct {
	services *service.Services

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

// NewHandler constructs a [Handler] verifying admin tokens with cfg.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:     services,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ServerOptions returns the interceptor chain every gRPC server built for
// this handler must use.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withRecovery, h.auth),
	}
}

// Register installs leadsync.SyncService on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	rpc.RegisterSyncServer(s, h)
}

func (h *Handler) Check(ctx context.Context, req *models.SyncRequest) (*models.SyncResponse, error) {
	status, err := h.services.SyncService.Check(ctx, req.Fingerprint)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Check").Msg("error checking fingerprint")
		return nil, statusFromError(err)
	}

	response := models.NewSyncStatusResponse(status)
	return &response, nil
}

func (h *Handler) Diff(ctx context.Context, req *models.SyncRequest) (*models.DiffResponse, error) {
	// a Diff call is round two even when the client holds nothing
	if req.Versions == nil {
		req.Versions = map[int64]int64{}
	}

	diff, err := h.services.SyncService.Diff(ctx, *req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Diff").Msg("error computing diff")
		return nil, statusFromError(err)
	}

	return &diff, nil
}

func (h *Handler) Version(ctx context.Context, _ *rpc.VersionRequest) (*rpc.VersionResponse, error) {
	return &rpc.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}
