// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreatedLeadResponse is returned by the public intake endpoint.
type CreatedLeadResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// LeadListResponse is returned by the admin list endpoint.
type LeadListResponse struct {
	Leads  []Lead `json:"leads"`
	Length int    `json:"length"`
}

// FingerprintHistoryResponse is returned by the history endpoint.
type FingerprintHistoryResponse struct {
	Entries []FingerprintHistoryEntry `json:"entries"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
