// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

func (h *Handler) getFingerprint(w http.ResponseWriter, r *http.Request) {
	fp, err := h.services.SyncService.Fingerprint(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getFingerprint").Msg("error reading fingerprint")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, fp, http.StatusOK)
}

func (h *Handler) getFingerprintHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.SyncService.History(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getFingerprintHistory").Msg("error reading fingerprint history")
		writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []models.FingerprintHistoryEntry{}
	}

	utils.WriteJSON(w, models.FingerprintHistoryResponse{Entries: entries}, http.StatusOK)
}
