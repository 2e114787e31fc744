// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/melodymei/agendasheet/cliparse"
	"github.com/melodymei/agendasheet/handlers"
	"github.com/melodymei/agendasheet/middleware"
	"github.com/melodymei/agendasheet/sheet"
	"github.com/melodymei/agendasheet/snapshots"
)

func NewRouter(db *sql.DB, store *sheet.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sheetHandler := handlers.NewSheetHandler(store, cfg)
	snapshotHandler := handlers.NewSnapshotHandler(store, snapshots.NewStore(db))
	printHandler := handlers.NewPrintHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sheet pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(sheetHandler.Index))
	mux.HandleFunc("GET /print", middleware.WithLogging(sheetHandler.PrintView))

	// Sheet state and edits
	mux.HandleFunc("GET /api/sheet", middleware.WithLogging(sheetHandler.GetSheet))
	mux.HandleFunc("PATCH /api/sheet/details", middleware.WithLogging(sheetHandler.ChangeDetail))
	mux.HandleFunc("PATCH /api/sheet/date", middleware.WithLogging(sheetHandler.ChangeDate))
	mux.HandleFunc("PATCH /api/sheet/officers/{index}", middleware.WithLogging(sheetHandler.ChangeOfficer))
	mux.HandleFunc("PATCH /api/sheet/agenda/{index}", middleware.WithLogging(sheetHandler.ChangeAgendaField))
	mux.HandleFunc("POST /api/sheet/agenda/{index}/move", middleware.WithLogging(sheetHandler.MoveAgendaItem))
	mux.HandleFunc("DELETE /api/sheet/agenda/{index}", middleware.WithLogging(sheetHandler.DeleteAgendaItem))
	mux.HandleFunc("POST /api/sheet/agenda", middleware.WithLogging(sheetHandler.AddAgendaItem))
	mux.HandleFunc("POST /api/sheet/reset", middleware.WithLogging(sheetHandler.ResetSheet))

	// Snapshots
	mux.HandleFunc("POST /api/snapshots", middleware.WithLogging(snapshotHandler.SaveSnapshot))
	mux.HandleFunc("GET /api/snapshots", middleware.WithLogging(snapshotHandler.ListSnapshots))
	mux.HandleFunc("POST /api/snapshots/restore", middleware.WithLogging(snapshotHandler.RestoreSnapshot))

	// Printing
	mux.HandleFunc("GET /api/print/pdf", middleware.WithLogging(printHandler.DownloadPDF))

	return mux
}
