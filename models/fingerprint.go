// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Fingerprint is the persisted aggregate hash of the active lead set.
type Fingerprint struct {
	Value     string    `json:"fingerprint"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FingerprintHistoryEntry is one row of the bounded fingerprint history.
type FingerprintHistoryEntry struct {
	ID          int64     `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}

// FingerprintAudit is the outcome of comparing the persisted fingerprint with
// one recomputed from scratch.
type FingerprintAudit struct {
	Stored     string    `json:"stored"`
	Recomputed string    `json:"recomputed"`
	Active     int       `json:"active"`
	InSync     bool      `json:"in_sync"`
	CheckedAt  time.Time `json:"checked_at"`
}
