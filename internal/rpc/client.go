// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-lead-sync/models"
)

// SyncClient is the client side of leadsync.SyncService.
type SyncClient interface {
	Check(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.SyncResponse, error)
	Diff(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.DiffResponse, error)
	Version(ctx context.Context, in *VersionRequest, opts ...grpc.CallOption) (*VersionResponse, error)
}

type syncClient struct {
	cc grpc.ClientConnInterface
}

// NewSyncClient returns a SyncClient over cc. Every call is sent with the
// JSON content-subtype.
func NewSyncClient(cc grpc.ClientConnInterface) SyncClient {
	return &syncClient{cc: cc}
}

func (c *syncClient) Check(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.SyncResponse, error) {
	out := new(models.SyncResponse)
	if err := c.cc.Invoke(ctx, CheckMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncClient) Diff(ctx context.Context, in *models.SyncRequest, opts ...grpc.CallOption) (*models.DiffResponse, error) {
	out := new(models.DiffResponse)
	if err := c.cc.Invoke(ctx, DiffMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncClient) Version(ctx context.Context, in *VersionRequest, opts ...grpc.CallOption) (*VersionResponse, error) {
	out := new(VersionResponse)
	if err := c.cc.Invoke(ctx, VersionMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
