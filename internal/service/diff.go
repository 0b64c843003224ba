// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-lead-sync/internal/fingerprint"
	"github.com/MKhiriev/go-lead-sync/models"
)

// ComputeDiff returns the delta that turns the client's view described by
// clientVersions into active. A lead is an update when the client lacks it
// or holds an older version; a client id is a deletion when it is not
// active. Both lists are in ascending id order and never nil. The response
// carries the fingerprint of active.
func ComputeDiff(active []models.Lead, clientVersions map[int64]int64, serverTime time.Time) models.DiffResponse {
	updates := make([]models.Lead, 0)
	activeIDs := make(map[int64]struct{}, len(active))

	for _, lead := range active {
		activeIDs[lead.ID] = struct{}{}
		if known, ok := clientVersions[lead.ID]; !ok || lead.Version > known {
			updates = append(updates, lead)
		}
	}
	slices.SortFunc(updates, func(a, b models.Lead) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	deletions := make([]int64, 0)
	for id := range clientVersions {
		if _, ok := activeIDs[id]; !ok {
			deletions = append(deletions, id)
		}
	}
	slices.Sort(deletions)

	return models.DiffResponse{
		Updates:     updates,
		Deletions:   deletions,
		ServerTime:  serverTime,
		Fingerprint: fingerprint.FromLeads(active),
	}
}
