// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fingerprint computes the aggregate hash that lets a client decide
// with a single comparison whether its snapshot matches the server.
//
// The canonical input is the list of "id:version" tokens of all active leads,
// ordered by ascending id and joined with "|". The digest is the lowercase hex
// SHA-256 of that string. An empty set hashes the empty string. Both sides of
// the protocol must produce byte-identical input, so every helper here sorts
// before hashing and callers never need to.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lead-sync/models"
)

const (
	pairSeparator  = "|"
	fieldSeparator = ":"
)

// Compute returns the fingerprint of pairs. The input slice is not modified.
func Compute(pairs []models.VersionPair) string {
	sorted := slices.Clone(pairs)
	slices.SortFunc(sorted, func(a, b models.VersionPair) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return hash(Canonical(sorted))
}

// FromVersions returns the fingerprint of an id→version map, as held by a
// client snapshot.
func FromVersions(versions map[int64]int64) string {
	pairs := make([]models.VersionPair, 0, len(versions))
	for id, version := range versions {
		pairs = append(pairs, models.VersionPair{ID: id, Version: version})
	}

	return Compute(pairs)
}

// FromLeads returns the fingerprint of the active leads among leads.
// Soft-deleted leads are skipped.
func FromLeads(leads []models.Lead) string {
	pairs := make([]models.VersionPair, 0, len(leads))
	for _, lead := range leads {
		if lead.IsDeleted {
			continue
		}
		pairs = append(pairs, lead.VersionPair())
	}

	return Compute(pairs)
}

// Canonical renders pairs, which must already be sorted by id, into the
// hashed string.
func Canonical(sorted []models.VersionPair) string {
	var b strings.Builder
	for i, p := range sorted {
		if i > 0 {
			b.WriteString(pairSeparator)
		}
		b.WriteString(strconv.FormatInt(p.ID, 10))
		b.WriteString(fieldSeparator)
		b.WriteString(strconv.FormatInt(p.Version, 10))
	}

	return b.String()
}

// Empty is the fingerprint of a store without active leads.
func Empty() string {
	return hash("")
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
