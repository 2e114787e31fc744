// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the snapshot database. SQLite is the default backend and
// needs no external service; PostgreSQL is available for shared hosts.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	driver, err := driverName(databaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", databaseType, err)
	}
	return conn, nil
}

func driverName(databaseType string) (string, error) {
	switch databaseType {
	case "", "sqlite":
		return "sqlite", nil
	case "postgres":
		return "postgres", nil
	}
	return "", fmt.Errorf("unsupported database type %q (want sqlite or postgres)", databaseType)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema sticks to types both backends share; saved_at is always bound
// explicitly rather than defaulted so SQLite and PostgreSQL agree.
const schema = `
-- Sheet snapshots: one row per explicit save, newest row is the restore target
CREATE TABLE IF NOT EXISTS sheet_snapshot (
    id TEXT PRIMARY KEY,
    schema_version INTEGER NOT NULL,
    saved_at TIMESTAMP NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sheet_snapshot_saved_at ON sheet_snapshot(saved_at);
`
