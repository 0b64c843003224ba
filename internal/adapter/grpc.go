// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/rpc"
	"github.com/MKhiriev/go-lead-sync/models"
)

type grpcServerAdapter struct {
	client  rpc.SyncClient
	conn    *grpc.ClientConn
	token   string
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCServerAdapter constructs a gRPC implementation of [ServerAdapter]
// talking to leadsync.SyncService at adapterCfg.GRPCAddress. Round one maps
// to Check and round two to Diff. The returned adapter also implements
// io.Closer.
func NewGRPCServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	address := strings.TrimSpace(adapterCfg.GRPCAddress)
	if address == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("error creating grpc client: %w", err)
	}

	a := newGRPCServerAdapter(conn, adapterCfg, logger)
	a.conn = conn
	return a, nil
}

func newGRPCServerAdapter(cc grpc.ClientConnInterface, adapterCfg config.ClientAdapter, logger *logger.Logger) *grpcServerAdapter {
	return &grpcServerAdapter{
		client:  rpc.NewSyncClient(cc),
		token:   strings.TrimSpace(adapterCfg.Token),
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}
}

// Sync implements [ServerAdapter].
func (g *grpcServerAdapter) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	if !req.IsRoundTwo() {
		resp, err := g.client.Check(ctx, &req)
		if err != nil {
			return models.SyncResponse{}, fmt.Errorf("sync check: %w", mapGRPCError(err))
		}
		return *resp, nil
	}

	diff, err := g.client.Diff(ctx, &req)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync diff: %w", mapGRPCError(err))
	}
	return models.NewSyncDiffResponse(*diff), nil
}

// Version implements [ServerAdapter].
func (g *grpcServerAdapter) Version(ctx context.Context) (string, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Version(ctx, &rpc.VersionRequest{})
	if err != nil {
		return "", fmt.Errorf("version: %w", mapGRPCError(err))
	}
	return resp.Version, nil
}

// Close releases the underlying connection.
func (g *grpcServerAdapter) Close() error {
	if g.conn == nil {
		return nil
	}
	return g.conn.Close()
}

func (g *grpcServerAdapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.AuthorizationKey, "Bearer "+g.token)
	}
	if g.timeout > 0 {
		return context.WithTimeout(ctx, g.timeout)
	}
	return context.WithCancel(ctx)
}
