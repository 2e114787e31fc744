// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/melodymei/agendasheet/middleware"
	"github.com/melodymei/agendasheet/models"
	"github.com/melodymei/agendasheet/sheet"
	"github.com/melodymei/agendasheet/snapshots"
)

type SnapshotHandler struct {
	store *sheet.Store
	snaps *snapshots.Store
}

func NewSnapshotHandler(store *sheet.Store, snaps *snapshots.Store) *SnapshotHandler {
	return &SnapshotHandler{store: store, snaps: snaps}
}

// SaveSnapshot handles POST /api/snapshots
func (h *SnapshotHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	saved, err := h.snaps.Save(h.store.Snapshot())
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save snapshot")
		return
	}

	slog.Info("snapshot saved", "snapshot_id", saved.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.SaveSnapshotResponse{
		SnapshotID: saved.ID,
		SavedAt:    saved.SavedAt,
	})
}

// ListSnapshots handles GET /api/snapshots
func (h *SnapshotHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	infos, err := h.snaps.List()
	if err != nil {
		slog.Error("failed to list snapshots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list snapshots")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListSnapshotsResponse{
		Snapshots: infos,
	})
}

// RestoreSnapshot handles POST /api/snapshots/restore
//
// Live state is only replaced after the stored payload decodes cleanly. A
// malformed payload leaves the sheet exactly as it was.
func (h *SnapshotHandler) RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	state, saved, err := h.snaps.Load()
	if errors.Is(err, snapshots.ErrNoSnapshot) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No saved snapshot")
		return
	}
	if errors.Is(err, snapshots.ErrParse) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load snapshot")
		return
	}

	h.store.Replace(state)

	slog.Info("snapshot restored", "snapshot_id", saved.ID)

	middleware.JSONResponse(w, http.StatusOK, models.RestoreSnapshotResponse{
		SnapshotID: saved.ID,
		State:      h.store.Snapshot(),
	})
}
