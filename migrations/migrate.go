// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the server (PostgreSQL) and of the
// sync client's local snapshot (SQLite) and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects one of the embedded migration sets.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errNilDB
	}

	gooseDialect, dir, err := resolve(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func resolve(dialect Dialect) (string, string, error) {
	switch dialect {
	case Postgres:
		return "pgx", "postgres", nil
	case SQLite:
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("migration error: unknown dialect %q", dialect)
	}
}
