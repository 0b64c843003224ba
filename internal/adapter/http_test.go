// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, token string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, Token: token}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://leads.example.com/", want: "https://leads.example.com"},
		{name: "whitespace", raw: "  http://a:1  ", want: "http://a:1"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

// ── Sync ────────────────────────────────────────────────────────────────────

func TestSync_RoundOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, syncPath, r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"fingerprint":"abc","versions":null}`, string(raw))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mismatch":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "admin-token")
	got, err := a.Sync(context.Background(), models.SyncRequest{Fingerprint: "abc"})

	require.NoError(t, err)
	assert.True(t, got.Mismatch)
	assert.False(t, got.InSync)
	assert.Nil(t, got.DiffResponse)
}

func TestSync_RoundTwoSendsEmptyMap(t *testing.T) {
	serverTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IsRoundTwo())
		assert.Empty(t, req.Versions)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.NewSyncDiffResponse(models.DiffResponse{
			Updates:    []models.Lead{{ID: 1, Name: "ada", Version: 2}},
			Deletions:  []int64{},
			ServerTime: serverTime,
		}))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	got, err := a.Sync(context.Background(), models.SyncRequest{Fingerprint: "x", Versions: map[int64]int64{}})

	require.NoError(t, err)
	require.NotNil(t, got.DiffResponse)
	require.Len(t, got.Updates, 1)
	assert.Equal(t, int64(2), got.Updates[0].Version)
	assert.True(t, serverTime.Equal(got.ServerTime))
}

func TestSync_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("missing token"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Sync(context.Background(), models.SyncRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSync_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "t")
			_, err := a.Sync(context.Background(), models.SyncRequest{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSync_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	_, err := a.Sync(context.Background(), models.SyncRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, versionPath, r.URL.Path)
		_, _ = w.Write([]byte("v1.4.0\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", got)
}
