// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-lead-sync/models"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "leadsync.SyncService"

	CheckMethod   = "/" + ServiceName + "/Check"
	DiffMethod    = "/" + ServiceName + "/Diff"
	VersionMethod = "/" + ServiceName + "/Version"

	// AuthorizationKey is the metadata key carrying "Bearer <token>".
	AuthorizationKey = "authorization"
	// TraceIDKey is the metadata key carrying the caller's trace id.
	TraceIDKey = "x-trace-id"
)

// VersionRequest is the empty request of the Version call.
type VersionRequest struct{}

// VersionResponse carries the server application version.
type VersionResponse struct {
	Version string `json:"version"`
}

// SyncServer is the server side of leadsync.SyncService.
type SyncServer interface {
	// Check is round one: it answers {inSync} or {mismatch} for the request
	// fingerprint and ignores any version map.
	Check(ctx context.Context, req *models.SyncRequest) (*models.SyncResponse, error)
	// Diff is round two: it answers the delta for the request version map.
	Diff(ctx context.Context, req *models.SyncRequest) (*models.DiffResponse, error)
	Version(ctx context.Context, req *VersionRequest) (*VersionResponse, error)
}

// RegisterSyncServer registers srv on s.
func RegisterSyncServer(s grpc.ServiceRegistrar, srv SyncServer) {
	s.RegisterService(&SyncServiceDesc, srv)
}

// SyncServiceDesc is the grpc.ServiceDesc for leadsync.SyncService.
var SyncServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Check", Handler: checkHandler},
		{MethodName: "Diff", Handler: diffHandler},
		{MethodName: "Version", Handler: versionHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "leadsync/sync.json",
}

func checkHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SyncRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).Check(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CheckMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).Check(ctx, req.(*models.SyncRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func diffHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SyncRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).Diff(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DiffMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).Diff(ctx, req.(*models.SyncRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func versionHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).Version(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VersionMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).Version(ctx, req.(*VersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}
