// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/models"
)

func TestGetFingerprint(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    string
		wantErr error
	}{
		{
			name: "stored",
			rows: sqlmock.NewRows([]string{"value", "updated_at"}).AddRow("abc", testNow),
			want: "abc",
		},
		{
			name:    "missing row",
			err:     sql.ErrNoRows,
			wantErr: ErrFingerprintUnavailable,
		},
		{
			name:    "empty value",
			rows:    sqlmock.NewRows([]string{"value", "updated_at"}).AddRow("", testNow),
			wantErr: ErrFingerprintUnavailable,
		},
		{
			name:    "driver error",
			err:     sql.ErrConnDone,
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewFingerprintRepository(db, 10, logger.Nop())

			q := mock.ExpectQuery("SELECT value, updated_at").WithArgs(configKeyFingerprint)
			if tt.err != nil {
				q.WillReturnError(tt.err)
			} else {
				q.WillReturnRows(tt.rows)
			}

			fp, err := repo.GetFingerprint(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, fp.Value)
			assert.Equal(t, testNow, fp.UpdatedAt)
		})
	}
}

func TestGetFingerprintHistory(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFingerprintRepository(db, 3, logger.Nop())

	mock.ExpectQuery("FROM fingerprint_history").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fingerprint", "created_at"}).
			AddRow(9, "c", testNow).
			AddRow(8, "b", testNow))

	entries, err := repo.GetFingerprintHistory(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(9), entries[0].ID)
	assert.Equal(t, "b", entries[1].Fingerprint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeFingerprint(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFingerprintRepository(db, 0, logger.Nop())

	mock.ExpectBegin()
	want := expectFingerprintCommit(mock, 10,
		models.VersionPair{ID: 1, Version: 2},
		models.VersionPair{ID: 10, Version: 1},
	)
	mock.ExpectCommit()

	fp, err := repo.RecomputeFingerprint(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, fp.Value)
	assert.Equal(t, testNow, fp.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveVersions(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFingerprintRepository(db, 10, logger.Nop())

	mock.ExpectQuery("SELECT id, version").
		WillReturnRows(sqlmock.NewRows([]string{"id", "version"}).AddRow(1, 3).AddRow(2, 1))

	pairs, err := repo.ActiveVersions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.VersionPair{{ID: 1, Version: 3}, {ID: 2, Version: 1}}, pairs)
}
