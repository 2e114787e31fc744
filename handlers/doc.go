// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the agenda sheet.

# Handler Types

Each handler is a struct with its dependencies injected:

  - SheetHandler: Sheet pages plus all live edits (details, date,
    officers, agenda rows)
  - SnapshotHandler: Save, list, and restore whole-sheet snapshots
  - PrintHandler: Print the sheet to PDF via headless Chromium

Handlers are created via constructor functions:

	sheetHandler := handlers.NewSheetHandler(store, cfg)
	snapshotHandler := handlers.NewSnapshotHandler(store, snaps)
	printHandler := handlers.NewPrintHandler(cfg)

# Editing Flow

Every edit goes through the sheet store, which recomputes row start
times when the change affects scheduling, then the full sheet state is
returned so the client always renders the recomputed times:

	PATCH  /api/sheet/details              - Change a meeting detail
	PATCH  /api/sheet/date                 - Change the selected date
	PATCH  /api/sheet/officers/{index}     - Change an officer name
	PATCH  /api/sheet/agenda/{index}       - Change one agenda field
	POST   /api/sheet/agenda/{index}/move  - Move a row up or down
	DELETE /api/sheet/agenda/{index}       - Delete a row
	POST   /api/sheet/agenda               - Append a row
	POST   /api/sheet/reset                - Restore the template

# Error Mapping

Out-of-range row or officer indexes map to 404; unknown keys, fields,
types, or directions map to 400. A snapshot payload that cannot be
decoded maps to 422 and leaves the live sheet untouched.

# Snapshots

The whole sheet state travels as one blob:

	POST /api/snapshots         - Save the current state
	GET  /api/snapshots         - List saved snapshots, newest first
	POST /api/snapshots/restore - Replace live state with the newest

# Printing

GET /api/print/pdf opens the server's own /print view in headless
Chromium and streams the resulting PDF as a download.
*/
package handlers
