// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

const leadCreatedMessage = "lead received"

// createLead is the public intake endpoint.
func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.LeadPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		log.Err(err).Str("func", "*Handler.createLead").Msg("error decoding lead payload")
		writeServiceError(w, err)
		return
	}

	lead, err := h.services.LeadService.Create(r.Context(), payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createLead").Msg("error creating lead")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.CreatedLeadResponse{Message: leadCreatedMessage, ID: lead.ID}, http.StatusCreated)
}

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.services.LeadService.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listLeads").Msg("error listing leads")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.LeadListResponse{Leads: leads, Length: len(leads)}, http.StatusOK)
}

func (h *Handler) updateLead(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := leadIDParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateLead").Send()
		writeServiceError(w, err)
		return
	}

	var update models.LeadUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		log.Err(err).Str("func", "*Handler.updateLead").Msg("error decoding lead update")
		writeServiceError(w, err)
		return
	}

	lead, err := h.services.LeadService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateLead").Int64("lead_id", id).Msg("error updating lead")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, lead, http.StatusOK)
}

func (h *Handler) deleteLead(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := leadIDParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteLead").Send()
		writeServiceError(w, err)
		return
	}

	lead, err := h.services.LeadService.SoftDelete(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteLead").Int64("lead_id", id).Msg("error deleting lead")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, lead, http.StatusOK)
}
