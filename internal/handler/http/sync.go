// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

// syncLeads serves both rounds of the reconciliation protocol. A body
// without "versions" is round one and gets {inSync} or {mismatch}; a body
// with "versions", even an empty object, gets the diff.
func (h *Handler) syncLeads(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SyncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.syncLeads").Msg("error decoding sync request")
		writeServiceError(w, err)
		return
	}

	response, err := h.services.SyncService.Sync(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncLeads").Msg("error answering sync request")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
