// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-lead-sync/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Post("/api/leads", h.createLead)
		r.Get("/api/version", h.getServerVersion)

		// admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/admin/leads", h.listLeads)
			r.Patch("/api/admin/leads/{id}", h.updateLead)
			r.Delete("/api/admin/leads/{id}", h.deleteLead)
			r.Post("/api/admin/leads/sync", h.syncLeads)

			r.Get("/api/admin/fingerprint", h.getFingerprint)
			r.Get("/api/admin/fingerprint/history", h.getFingerprintHistory)

			r.Post("/api/admin/archive", h.compactArchive)
			r.Post("/api/admin/notifications/heartbeat", h.runHeartbeat)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
