// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
)

// compactArchive moves every soft-deleted lead to cold storage.
func (h *Handler) compactArchive(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.ArchiveService.Compact(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.compactArchive").Msg("error compacting deleted leads")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// runHeartbeat runs one notifier cycle synchronously and reports its outcome.
// A failed dispatch is answered with 502 and leaves the batch pending.
func (h *Handler) runHeartbeat(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.NotifierService.Heartbeat(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.runHeartbeat").Msg("heartbeat failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
