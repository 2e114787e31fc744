// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Backends

Two database/sql drivers are registered:

  - sqlite (modernc.org/sqlite): the default, a local file or :memory:
  - postgres (lib/pq): for shared deployments

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema

One table, created idempotently at startup:

	sheet_snapshot (id, schema_version, saved_at, payload)

Each explicit save appends a row; the newest row is what restore loads.
The payload column holds the JSON snapshot blob.
*/
package db
