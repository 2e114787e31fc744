// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the agenda sheet server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, store, cfg)

# Endpoints

Health:

	GET /health

Pages:

	GET /       - Editable sheet
	GET /print  - Static print view

Sheet state and edits:

	GET    /api/sheet                     - Full state plus date vocabularies
	PATCH  /api/sheet/details             - Change a meeting detail
	PATCH  /api/sheet/date                - Change the selected date
	PATCH  /api/sheet/officers/{index}    - Change an officer name
	PATCH  /api/sheet/agenda/{index}      - Change one agenda field
	POST   /api/sheet/agenda/{index}/move - Move a row up or down
	DELETE /api/sheet/agenda/{index}      - Delete a row
	POST   /api/sheet/agenda              - Append a row
	POST   /api/sheet/reset               - Restore the template

Snapshots:

	POST /api/snapshots         - Save the current state
	GET  /api/snapshots         - List saved snapshots
	POST /api/snapshots/restore - Restore the newest snapshot

Printing:

	GET /api/print/pdf - Download the sheet as a PDF

# Handler Initialization

The router creates handler instances with dependency injection:

	sheetHandler := handlers.NewSheetHandler(store, cfg)
	snapshotHandler := handlers.NewSnapshotHandler(store, snapshots.NewStore(db))
	printHandler := handlers.NewPrintHandler(cfg)
*/
package router
