// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8323)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - TemplatePath: Optional YAML file overriding the built-in sheet template
  - BaseURL: Optional base URL for the print capture to navigate to

# CLI Flags

	-p          Server port
	-d          Database URL or file path
	-t          Database type
	-template   Sheet template path
	-base-url   Print capture base URL

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TEMPLATE_PATH → -template
	BASE_URL      → -base-url

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if values are missing or inconsistent:

  - DATABASE_TYPE must be sqlite or postgres
  - DATABASE_URL must be provided when the type is postgres

With the sqlite default every value has a fallback, so the server
starts with no flags and no environment at all.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, store, cfg)
*/
package cliparse
