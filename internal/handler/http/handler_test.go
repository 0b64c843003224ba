// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/fingerprint"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/service"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "clinic-auth"
)

type testServer struct {
	server   *httptest.Server
	memory   *store.MemoryStore
	services *service.Services
	token    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey: testSignKey,
			TokenIssuer:  testIssuer,
			Version:      "1.4.0",
		},
		Notifier: config.Notifier{Subject: "New Leads"},
	}

	memory := store.NewMemoryStore(10, utils.SystemClock{})
	services, err := service.NewServices(context.Background(), store.NewMemoryStorages(memory), cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, cfg.App, logger.Nop())
	server := httptest.NewServer(h.Init())
	t.Cleanup(func() {
		server.Close()
		services.NotifierService.Wait()
	})

	token, err := utils.SignAdminToken("admin@clinic", testIssuer, time.Hour, testSignKey)
	require.NoError(t, err)

	return &testServer{server: server, memory: memory, services: services, token: token}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, authed bool) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (ts *testServer) createLead(t *testing.T, name string) int64 {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/api/leads", map[string]any{
		"name":   name,
		"mobile": "+91 98765 43210",
	}, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[models.CreatedLeadResponse](t, resp).ID
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.App{TokenSignKey: "k", TokenIssuer: "iss"}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, "k", h.tokenSignKey)
	assert.Equal(t, "iss", h.tokenIssuer)
}

func TestCreateLead(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/leads", map[string]any{
		"name":    "  Ada Lovelace ",
		"mobile":  "+91 98765 43210",
		"email":   "ADA@example.com",
		"message": "knee   pain",
	}, false)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.CreatedLeadResponse](t, resp)
	assert.Equal(t, leadCreatedMessage, created.Message)
	assert.Positive(t, created.ID)

	lead, err := ts.memory.GetLead(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada lovelace", lead.Name)
	assert.Equal(t, "9876543210", lead.Mobile)
	assert.Equal(t, int64(1), lead.Version)
}

func TestCreateLead_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"name":`},
		{name: "missing name", body: `{"mobile":"5551234567"}`},
		{name: "missing mobile", body: `{"name":"ada","mobile":"no digits"}`},
		{name: "bad email", body: `{"name":"ada","mobile":"5551234567","email":"nope"}`},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ts.server.Client().Post(ts.server.URL+"/api/leads", "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, decodeBody[models.ErrorResponse](t, resp).Error)
		})
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	ts := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/leads"},
		{http.MethodPatch, "/api/admin/leads/1"},
		{http.MethodDelete, "/api/admin/leads/1"},
		{http.MethodPost, "/api/admin/leads/sync"},
		{http.MethodGet, "/api/admin/fingerprint"},
		{http.MethodGet, "/api/admin/fingerprint/history"},
		{http.MethodPost, "/api/admin/archive"},
		{http.MethodPost, "/api/admin/notifications/heartbeat"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			resp := ts.do(t, rt.method, rt.path, nil, false)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestListLeads_NewestFirst(t *testing.T) {
	ts := newTestServer(t)
	first := ts.createLead(t, "first")
	second := ts.createLead(t, "second")

	resp := ts.do(t, http.MethodGet, "/api/admin/leads", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeBody[models.LeadListResponse](t, resp)
	require.Equal(t, 2, list.Length)
	assert.Equal(t, second, list.Leads[0].ID)
	assert.Equal(t, first, list.Leads[1].ID)
}

func TestUpdateLead(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createLead(t, "ada")

	resp := ts.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/leads/%d", id), map[string]any{
		"contacted":   true,
		"admin_notes": "called back",
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lead := decodeBody[models.Lead](t, resp)
	assert.True(t, lead.Contacted)
	require.NotNil(t, lead.AdminNotes)
	assert.Equal(t, "called back", *lead.AdminNotes)
	assert.Equal(t, int64(2), lead.Version)
}

func TestUpdateLead_Errors(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createLead(t, "ada")

	tests := []struct {
		name       string
		path       string
		body       any
		wantStatus int
	}{
		{name: "empty update", path: fmt.Sprintf("/api/admin/leads/%d", id), body: map[string]any{}, wantStatus: http.StatusBadRequest},
		{name: "non-numeric id", path: "/api/admin/leads/abc", body: map[string]any{"visited": true}, wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/admin/leads/0", body: map[string]any{"visited": true}, wantStatus: http.StatusBadRequest},
		{name: "unknown lead", path: "/api/admin/leads/999", body: map[string]any{"visited": true}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.do(t, http.MethodPatch, tt.path, tt.body, true)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestDeleteLead(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createLead(t, "ada")
	path := fmt.Sprintf("/api/admin/leads/%d", id)

	resp := ts.do(t, http.MethodDelete, path, nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lead := decodeBody[models.Lead](t, resp)
	assert.True(t, lead.IsDeleted)
	assert.Equal(t, int64(2), lead.Version)

	again := ts.do(t, http.MethodDelete, path, nil, true)
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}

func TestSyncLeads_TwoRounds(t *testing.T) {
	ts := newTestServer(t)
	a := ts.createLead(t, "a")
	b := ts.createLead(t, "b")

	// round one from an empty client
	resp := ts.do(t, http.MethodPost, "/api/admin/leads/sync", map[string]any{
		"fingerprint": fingerprint.Compute(nil),
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"mismatch":true}`, readAll(t, resp))

	// round two with an empty but present version map
	resp = ts.do(t, http.MethodPost, "/api/admin/leads/sync", map[string]any{
		"fingerprint": fingerprint.Compute(nil),
		"versions":    map[string]int64{},
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	diff := decodeBody[models.SyncResponse](t, resp)
	require.NotNil(t, diff.DiffResponse)
	require.Len(t, diff.Updates, 2)
	assert.Equal(t, a, diff.Updates[0].ID)
	assert.Equal(t, b, diff.Updates[1].ID)
	assert.Empty(t, diff.Deletions)
	assert.False(t, diff.ServerTime.IsZero())

	// the client now holds the server set
	pairs := []models.VersionPair{diff.Updates[0].VersionPair(), diff.Updates[1].VersionPair()}
	assert.Equal(t, fingerprint.Compute(pairs), diff.Fingerprint)
	resp = ts.do(t, http.MethodPost, "/api/admin/leads/sync", map[string]any{
		"fingerprint": fingerprint.Compute(pairs),
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"inSync":true}`, readAll(t, resp))
}

func TestSyncLeads_InvalidVersions(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/admin/leads/sync", map[string]any{
		"fingerprint": "x",
		"versions":    map[string]int64{"7": 0},
	}, true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFingerprintEndpoints(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createLead(t, "ada")

	resp := ts.do(t, http.MethodGet, "/api/admin/fingerprint", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fp := decodeBody[models.Fingerprint](t, resp)
	assert.Equal(t, fingerprint.Compute([]models.VersionPair{{ID: id, Version: 1}}), fp.Value)

	resp = ts.do(t, http.MethodGet, "/api/admin/fingerprint/history", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decodeBody[models.FingerprintHistoryResponse](t, resp)
	require.NotEmpty(t, history.Entries)
	assert.Equal(t, fp.Value, history.Entries[0].Fingerprint)
}

func TestFingerprint_Uninitialized(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/admin/fingerprint/history", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"entries":[]}`, readAll(t, resp))
}

func TestCompactArchive(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createLead(t, "ada")
	ts.createLead(t, "bob")
	ts.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/leads/%d", id), nil, true)

	resp := ts.do(t, http.MethodPost, "/api/admin/archive", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody[models.CompactionResult](t, resp)
	assert.Equal(t, 1, result.Archived)

	archived := ts.memory.ArchivedLeads()
	require.Len(t, archived, 1)
	assert.Equal(t, id, archived[0].OriginalID)
}

func TestRunHeartbeat(t *testing.T) {
	ts := newTestServer(t)
	ts.createLead(t, "ada")
	// the create already triggered a background cycle
	ts.services.NotifierService.Wait()

	resp := ts.do(t, http.MethodPost, "/api/admin/notifications/heartbeat", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody[models.HeartbeatResult](t, resp)
	assert.Equal(t, models.HeartbeatIdle, result.Status)
	assert.Zero(t, result.Pending)
}

func TestGetServerVersion(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/version", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "1.4.0", readAll(t, resp))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.createLead(t, "ada")

	resp := ts.do(t, http.MethodGet, "/metrics", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readAll(t, resp), "leadsync_")
}

func TestUnsupportedMethod_IsNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/leads", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.do(t, http.MethodPut, "/api/admin/leads/sync", nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestHandlers_DirectRecorder(t *testing.T) {
	// handlers work without the router's middleware chain
	memory := store.NewMemoryStore(10, utils.SystemClock{})
	services := &service.Services{
		SyncService: service.NewSyncService(memory, memory, nopNotifier{}, utils.SystemClock{}, logger.Nop()),
	}
	h := NewHandler(services, config.App{}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/fingerprint", nil)
	rr := httptest.NewRecorder()
	h.getFingerprint(rr, req)

	// a store that never recomputed has no fingerprint yet
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

type nopNotifier struct{}

func (nopNotifier) Heartbeat(context.Context) (models.HeartbeatResult, error) {
	return models.HeartbeatResult{Status: models.HeartbeatIdle}, nil
}
func (nopNotifier) Trigger(context.Context) {}
func (nopNotifier) Wait()                   {}
