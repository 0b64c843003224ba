// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Lead is a single intake request shared by every admin client.
//
// ID and CreatedAt never change after creation. Version starts at 1 and is
// incremented by the store on every successful mutation, so the pair
// (ID, Version) identifies one committed state of the lead.
type Lead struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Email      *string   `json:"email"`
	Message    *string   `json:"message"`
	Contacted  bool      `json:"contacted"`
	Visited    bool      `json:"visited"`
	AdminNotes *string   `json:"admin_notes"`
	Version    int64     `json:"version"`
	IsDeleted  bool      `json:"is_deleted"`
	Notified   bool      `json:"notified"`
	CreatedAt  time.Time `json:"created_at"`
}

// VersionPair returns the (id, version) pair the fingerprint is built from.
func (l Lead) VersionPair() VersionPair {
	return VersionPair{ID: l.ID, Version: l.Version}
}

// LeadPayload is the body of a public intake request after normalization.
type LeadPayload struct {
	Name    string  `json:"name"`
	Mobile  string  `json:"mobile"`
	Email   *string `json:"email,omitempty"`
	Message *string `json:"message,omitempty"`
}

// LeadUpdate is a partial admin update. Nil fields are left untouched.
type LeadUpdate struct {
	Contacted  *bool   `json:"contacted,omitempty"`
	Visited    *bool   `json:"visited,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`
	Email      *string `json:"email,omitempty"`
	Message    *string `json:"message,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u LeadUpdate) IsEmpty() bool {
	return u.Contacted == nil &&
		u.Visited == nil &&
		u.AdminNotes == nil &&
		u.Email == nil &&
		u.Message == nil
}

// Apply copies every non-nil field of u onto lead.
func (u LeadUpdate) Apply(lead *Lead) {
	if u.Contacted != nil {
		lead.Contacted = *u.Contacted
	}
	if u.Visited != nil {
		lead.Visited = *u.Visited
	}
	if u.AdminNotes != nil {
		lead.AdminNotes = u.AdminNotes
	}
	if u.Email != nil {
		lead.Email = u.Email
	}
	if u.Message != nil {
		lead.Message = u.Message
	}
}

// VersionPair is the (id, version) identity of one committed lead state.
type VersionPair struct {
	ID      int64 `json:"id"`
	Version int64 `json:"version"`
}
