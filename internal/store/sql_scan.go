// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lead-sync/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (models.Lead, error) {
	var lead models.Lead
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Mobile,
		&lead.Email,
		&lead.Message,
		&lead.Contacted,
		&lead.Visited,
		&lead.AdminNotes,
		&lead.Version,
		&lead.IsDeleted,
		&lead.Notified,
		&lead.CreatedAt,
	)
	return lead, err
}

func scanArchivedLead(row rowScanner) (models.ArchivedLead, error) {
	var a models.ArchivedLead
	err := row.Scan(
		&a.ID,
		&a.OriginalID,
		&a.Name,
		&a.Mobile,
		&a.Email,
		&a.Message,
		&a.Contacted,
		&a.Visited,
		&a.AdminNotes,
		&a.CreatedAt,
		&a.Version,
		&a.ArchivedAt,
	)
	return a, err
}

// queryLeads runs a lead-returning query and collects every row.
func queryLeads(ctx context.Context, q DBTX, query string, args ...any) ([]models.Lead, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	leads := make([]models.Lead, 0, 32)
	for rows.Next() {
		lead, scanErr := scanLead(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return leads, nil
}

func queryVersionPairs(ctx context.Context, q DBTX) ([]models.VersionPair, error) {
	rows, err := q.QueryContext(ctx, selectActiveVersions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pairs := make([]models.VersionPair, 0, 64)
	for rows.Next() {
		var p models.VersionPair
		if scanErr := rows.Scan(&p.ID, &p.Version); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		pairs = append(pairs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pairs, nil
}

// scanLeadOrNotFound maps sql.ErrNoRows to ErrLeadNotFound.
func scanLeadOrNotFound(row *sql.Row) (models.Lead, error) {
	lead, err := scanLead(row)
	if err == nil {
		return lead, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.Lead{}, ErrLeadNotFound
	}
	return models.Lead{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
