// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ArchivedLead is a soft-deleted lead moved to cold storage.
type ArchivedLead struct {
	ID         int64     `json:"id"`
	OriginalID int64     `json:"original_id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Email      *string   `json:"email"`
	Message    *string   `json:"message"`
	Contacted  bool      `json:"contacted"`
	Visited    bool      `json:"visited"`
	AdminNotes *string   `json:"admin_notes"`
	CreatedAt  time.Time `json:"lead_created_at"`
	Version    int64     `json:"version"`
	ArchivedAt time.Time `json:"archived_at"`
}

// NewArchivedLead copies lead into an archive row stamped with at.
func NewArchivedLead(lead Lead, at time.Time) ArchivedLead {
	return ArchivedLead{
		OriginalID: lead.ID,
		Name:       lead.Name,
		Mobile:     lead.Mobile,
		Email:      lead.Email,
		Message:    lead.Message,
		Contacted:  lead.Contacted,
		Visited:    lead.Visited,
		AdminNotes: lead.AdminNotes,
		CreatedAt:  lead.CreatedAt,
		Version:    lead.Version,
		ArchivedAt: at,
	}
}

// CompactionResult reports one archive run.
type CompactionResult struct {
	Archived  int    `json:"archived"`
	ExportKey string `json:"export_key,omitempty"`
}
