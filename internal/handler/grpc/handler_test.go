// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/fingerprint"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/rpc"
	"github.com/MKhiriev/go-lead-sync/internal/service"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

const (
	testSignKey = "grpc-sign-key"
	testIssuer  = "clinic-auth"
)

type nopNotifier struct{}

func (nopNotifier) Heartbeat(context.Context) (models.HeartbeatResult, error) {
	return models.HeartbeatResult{Status: models.HeartbeatIdle}, nil
}
func (nopNotifier) Trigger(context.Context) {}
func (nopNotifier) Wait()                   {}

type versionStub string

func (v versionStub) GetAppVersion(context.Context) string { return string(v) }

type testEnv struct {
	client rpc.SyncClient
	memory *store.MemoryStore
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	memory := store.NewMemoryStore(10, utils.SystemClock{})
	services := &service.Services{
		SyncService:    service.NewSyncService(memory, memory, nopNotifier{}, utils.SystemClock{}, logger.Nop()),
		AppInfoService: versionStub("2.0.1"),
	}
	h := NewHandler(services, config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	token, err := utils.SignAdminToken("admin@clinic", testIssuer, time.Hour, testSignKey)
	require.NoError(t, err)

	return &testEnv{client: rpc.NewSyncClient(conn), memory: memory, token: token}
}

func (e *testEnv) authed(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, rpc.AuthorizationKey, "Bearer "+e.token)
}

func (e *testEnv) seed(t *testing.T, n int) []models.Lead {
	t.Helper()
	leads := make([]models.Lead, 0, n)
	for i := 0; i < n; i++ {
		lead, err := e.memory.CreateLead(context.Background(), models.LeadPayload{Name: "lead", Mobile: "5551234567"})
		require.NoError(t, err)
		leads = append(leads, lead)
	}
	return leads
}

func TestCheck(t *testing.T) {
	env := newTestEnv(t)
	leads := env.seed(t, 2)

	resp, err := env.client.Check(env.authed(t), &models.SyncRequest{Fingerprint: fingerprint.Compute(nil)})
	require.NoError(t, err)
	assert.True(t, resp.Mismatch)
	assert.False(t, resp.InSync)
	assert.Nil(t, resp.DiffResponse)

	current := fingerprint.Compute([]models.VersionPair{leads[0].VersionPair(), leads[1].VersionPair()})
	resp, err = env.client.Check(env.authed(t), &models.SyncRequest{Fingerprint: current})
	require.NoError(t, err)
	assert.True(t, resp.InSync)
}

func TestCheck_UninitializedServerIsMismatch(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Check(env.authed(t), &models.SyncRequest{Fingerprint: fingerprint.Compute(nil)})
	require.NoError(t, err)
	assert.True(t, resp.Mismatch)
}

func TestDiff(t *testing.T) {
	env := newTestEnv(t)
	leads := env.seed(t, 3)
	_, err := env.memory.SoftDeleteLead(context.Background(), leads[1].ID)
	require.NoError(t, err)

	// the client holds every lead at version 1, plus one the server never had
	diff, err := env.client.Diff(env.authed(t), &models.SyncRequest{
		Versions: map[int64]int64{leads[0].ID: 1, leads[1].ID: 1, leads[2].ID: 1, 99: 4},
	})
	require.NoError(t, err)

	assert.Empty(t, diff.Updates)
	assert.Equal(t, []int64{leads[1].ID, 99}, diff.Deletions)
	assert.False(t, diff.ServerTime.IsZero())
}

func TestDiff_NilVersionsIsEmptyClient(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, 2)

	diff, err := env.client.Diff(env.authed(t), &models.SyncRequest{})
	require.NoError(t, err)
	assert.Len(t, diff.Updates, 2)
	assert.Empty(t, diff.Deletions)
}

func TestDiff_InvalidVersion(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.Diff(env.authed(t), &models.SyncRequest{Versions: map[int64]int64{5: 0}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAuth(t *testing.T) {
	env := newTestEnv(t)
	wrongKey, err := utils.SignAdminToken("admin@clinic", testIssuer, time.Hour, "other")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "not bearer", header: "Token abc"},
		{name: "garbage", header: "Bearer abc"},
		{name: "wrong key", header: "Bearer " + wrongKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if tt.header != "" {
				ctx = metadata.AppendToOutgoingContext(ctx, rpc.AuthorizationKey, tt.header)
			}

			_, err := env.client.Check(ctx, &models.SyncRequest{Fingerprint: "x"})
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}
}

func TestVersion_IsPublic(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var header metadata.MD
	resp, err := env.client.Version(ctx, &rpc.VersionRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "2.0.1", resp.Version)
	assert.NotEmpty(t, header.Get(rpc.TraceIDKey))
}

func TestTraceID_Echoed(t *testing.T) {
	env := newTestEnv(t)

	ctx := metadata.AppendToOutgoingContext(env.authed(t), rpc.TraceIDKey, "trace-42")
	var header metadata.MD
	_, err := env.client.Check(ctx, &models.SyncRequest{Fingerprint: "x"}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"trace-42"}, header.Get(rpc.TraceIDKey))
}

func TestWithRecovery(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: rpc.CheckMethod}

	_, err := h.withRecovery(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})

	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, codes.Unavailable, status.Code(statusFromError(store.ErrConflictRetriesExhausted)))
	assert.Equal(t, codes.Unauthenticated, status.Code(statusFromError(utils.ErrTokenInvalid)))

	err := statusFromError(store.ErrExecutingQuery)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "internal error", status.Convert(err).Message())
}
