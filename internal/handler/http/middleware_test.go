// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
)

func newMiddlewareHandler() *Handler {
	return &Handler{
		tokenSignKey: testSignKey,
		tokenIssuer:  testIssuer,
		logger:       logger.Nop(),
	}
}

// ---- auth ----

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def", wantToken: "abc.def"},
		{name: "lower-case scheme", header: "bearer abc", wantToken: "abc"},
		{name: "missing header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme only", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: utils.ErrInvalidAuthorizationHeader},
		{name: "three parts", header: "Bearer a b", wantErr: utils.ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth(t *testing.T) {
	valid, err := utils.SignAdminToken("admin@clinic", testIssuer, time.Hour, testSignKey)
	require.NoError(t, err)
	wrongKey, err := utils.SignAdminToken("admin@clinic", testIssuer, time.Hour, "other-key")
	require.NoError(t, err)
	wrongIssuer, err := utils.SignAdminToken("admin@clinic", "someone-else", time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantSubject string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantSubject: "admin@clinic"},
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + wrongKey, wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer, wantStatus: http.StatusUnauthorized},
	}

	h := newMiddlewareHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = utils.GetAdminSubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSubject, subject)
		})
	}
}

// ---- trace id ----

func TestWithTraceID(t *testing.T) {
	h := newMiddlewareHandler()

	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { seen = r })

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, req)

		assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
		require.NotNil(t, seen)
		assert.NotNil(t, zerolog.Ctx(seen.Context()))
	})

	t.Run("issues a uuid", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})
}

func TestWithTraceID_LogsCarryTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLoggerTo(&buf, "test")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

// ---- logging ----

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLoggerTo(&buf, "test")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("12345"))
	})

	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/leads", nil))

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":5`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/leads"`)
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Equal(t, http.StatusOK, w.statusCode())

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.Write([]byte("de"))

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 5, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

// ---- gzip ----

func TestWithGZip_CompressesWhenAccepted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]bool{"inSync": true}, http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/leads/sync", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inSync":true}`, string(body))
}

func TestWithGZip_PlainWhenNotAccepted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain"))
	})

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZip_EmptyBodyStaysEmpty(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	zw.Write([]byte(`{"fingerprint":"abc"}`))
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = string(raw)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"fingerprint":"abc"}`, got)
}

func TestWithGZip_RejectsCorruptBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- method check ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/leads", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		wantStatus int
	}{
		{http.MethodPost, http.StatusCreated},
		{http.MethodGet, http.StatusNotFound},
		{http.MethodDelete, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, "/api/leads", nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
