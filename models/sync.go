// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncRequest is sent by a client on every poll.
//
// Round one carries only the client fingerprint. Round two adds the full
// id→version map of the client snapshot. A nil Versions map marks a round one
// request; an empty but present map is a round two request from a client
// holding nothing.
type SyncRequest struct {
	Fingerprint string          `json:"fingerprint"`
	Versions    map[int64]int64 `json:"versions"`
}

// IsRoundTwo reports whether the request carries a version map.
func (r SyncRequest) IsRoundTwo() bool {
	return r.Versions != nil
}

// SyncStatus is the round one verdict.
type SyncStatus string

const (
	SyncInSync   SyncStatus = "in_sync"
	SyncMismatch SyncStatus = "mismatch"
)

// DiffResponse is the round two delta. Applying it to the snapshot the
// request was computed from yields the server's active set.
type DiffResponse struct {
	// Updates holds active leads missing from the client map or newer than
	// the client's version, in ascending id order.
	Updates []Lead `json:"updates"`
	// Deletions holds client ids that are no longer active on the server,
	// in ascending order.
	Deletions []int64 `json:"deletions"`
	// ServerTime is informational.
	ServerTime time.Time `json:"serverTime"`
	// Fingerprint is the fingerprint of the active set the delta was
	// computed against. A client whose snapshot does not hash to it after
	// applying the delta holds ids the server no longer knows, e.g. after an
	// in-memory server restarted its id sequence. Empty from servers that do
	// not send it.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// SyncResponse is the wire shape of both rounds. Exactly one of InSync,
// Mismatch or Diff is set.
type SyncResponse struct {
	InSync   bool `json:"inSync,omitempty"`
	Mismatch bool `json:"mismatch,omitempty"`
	*DiffResponse
}

// NewSyncStatusResponse wraps a round one verdict.
func NewSyncStatusResponse(status SyncStatus) SyncResponse {
	if status == SyncInSync {
		return SyncResponse{InSync: true}
	}
	return SyncResponse{Mismatch: true}
}

// NewSyncDiffResponse wraps a round two delta.
func NewSyncDiffResponse(diff DiffResponse) SyncResponse {
	return SyncResponse{DiffResponse: &diff}
}

// ClientSyncReport summarizes one client poll.
type ClientSyncReport struct {
	InSync    bool
	Updated   int
	Deleted   int
	SyncedAt  time.Time
	RoundsRun int
	// Rebuilt is set when the snapshot diverged and was replaced with the
	// server's full active set.
	Rebuilt bool
}
