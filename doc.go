// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the agenda sheet server.

Agendasheet is a browser-based editable meeting agenda for a Toastmasters
style club: a single shared sheet whose row start times are always derived
from the meeting start time and each row's duration, with whole-sheet
snapshots for save and restore and a headless-Chromium PDF export.

# Starting the Server

The server runs with no configuration at all (a local SQLite file):

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8323 -t postgres -d "postgres://..."

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8323)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - TEMPLATE_PATH (-template): YAML sheet template overriding the built-in
  - BASE_URL (-base-url): Base URL the PDF capture navigates to

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sheet edits, snapshots, printing)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain state plus request/response types
  - agenda: Duration parsing, time accumulation, list edits
  - sheet: The single live sheet state container
  - template: Built-in and YAML sheet templates
  - snapshots: Whole-state snapshot persistence
  - render: The agenda HTML page
  - capture: Headless-Chromium PDF printing
  - db: Connection opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
