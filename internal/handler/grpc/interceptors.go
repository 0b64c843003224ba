// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/rpc"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
)

// publicMethods skip the admin token check.
var publicMethods = map[string]bool{
	rpc.VersionMethod: true,
}

// withTraceID attaches a child logger carrying "trace_id" to ctx, reusing
// the caller's x-trace-id metadata when present.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, rpc.TraceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(rpc.TraceIDKey, traceID))
	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// withRecovery turns a handler panic into an Internal status.
func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Str("method", info.FullMethod).
				Interface("panic", r).
				Msg("recovered from panic")
			err = status.Error(codes.Internal, "internal error")
		}
	}()

	return next(ctx, req)
}

// auth verifies the admin token carried in the "authorization" metadata and
// stores its subject under [utils.AdminSubjectCtxKey].
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return next(ctx, req)
	}

	log := logger.FromContext(ctx)

	if _, ok := metadata.FromIncomingContext(ctx); !ok {
		log.Err(errMissingMetadata).Send()
		return nil, statusFromError(errMissingMetadata)
	}

	header := firstMetadataValue(ctx, rpc.AuthorizationKey)
	if strings.TrimSpace(header) == "" {
		log.Err(errMissingAuthorization).Send()
		return nil, statusFromError(errMissingAuthorization)
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		log.Err(err).Send()
		return nil, statusFromError(err)
	}

	token, err := utils.ValidateAdminToken(tokenString, h.tokenSignKey, h.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("admin token rejected")
		return nil, status.Error(codes.Unauthenticated, utils.ErrTokenInvalid.Error())
	}

	return next(context.WithValue(ctx, utils.AdminSubjectCtxKey, token.Subject), req)
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
