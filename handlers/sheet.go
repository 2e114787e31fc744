// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/melodymei/agendasheet/agenda"
	"github.com/melodymei/agendasheet/cliparse"
	"github.com/melodymei/agendasheet/middleware"
	"github.com/melodymei/agendasheet/models"
	"github.com/melodymei/agendasheet/render"
	"github.com/melodymei/agendasheet/sheet"
	"github.com/melodymei/agendasheet/template"
)

type SheetHandler struct {
	store *sheet.Store
	cfg   cliparse.Config
}

func NewSheetHandler(store *sheet.Store, cfg cliparse.Config) *SheetHandler {
	return &SheetHandler{store: store, cfg: cfg}
}

// Index handles GET / with the editable sheet page
func (h *SheetHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, true)
}

// PrintView handles GET /print with the static page the PDF capture loads
func (h *SheetHandler) PrintView(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, false)
}

func (h *SheetHandler) renderPage(w http.ResponseWriter, editable bool) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := render.Render(w, render.Page{
		State:    h.store.Snapshot(),
		Weekdays: template.Weekdays(),
		Months:   template.Months(),
		Editable: editable,
	})
	if err != nil {
		slog.Error("failed to render sheet page", "error", err)
	}
}

// GetSheet handles GET /api/sheet
func (h *SheetHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SheetResponse{
		State:    h.store.Snapshot(),
		Weekdays: template.Weekdays(),
		Months:   template.Months(),
	})
}

// ChangeDetail handles PATCH /api/sheet/details
func (h *SheetHandler) ChangeDetail(w http.ResponseWriter, r *http.Request) {
	var req models.DetailChangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "key is required")
		return
	}

	if err := h.store.SetDetail(req.Key, req.Value); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("detail changed", "key", req.Key)
	middleware.JSONResponse(w, http.StatusOK, h.sheetResponse())
}

// ChangeDate handles PATCH /api/sheet/date
func (h *SheetHandler) ChangeDate(w http.ResponseWriter, r *http.Request) {
	var req models.DateChangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.SetDate(models.DateSelection{
		SelectedWeekday: req.SelectedWeekday,
		SelectedMonth:   req.SelectedMonth,
		SelectedDay:     req.SelectedDay,
	})

	middleware.JSONResponse(w, http.StatusOK, h.sheetResponse())
}

// ChangeOfficer handles PATCH /api/sheet/officers/{index}
func (h *SheetHandler) ChangeOfficer(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req models.OfficerChangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.SetOfficerName(index, req.Name); err != nil {
		writeEditError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.sheetResponse())
}

// ChangeAgendaField handles PATCH /api/sheet/agenda/{index}
func (h *SheetHandler) ChangeAgendaField(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req models.AgendaFieldChangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Field == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "field is required")
		return
	}

	if err := h.store.SetAgendaField(index, req.Field, req.Value); err != nil {
		writeEditError(w, err)
		return
	}

	slog.Info("agenda field changed", "index", index, "field", req.Field)
	middleware.JSONResponse(w, http.StatusOK, h.sheetResponse())
}

// MoveAgendaItem handles POST /api/sheet/agenda/{index}/move
func (h *SheetHandler) MoveAgendaItem(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req models.MoveItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.Move(index, req.Direction); err != nil {
		writeEditError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.sheetResponse())
}

// DeleteAgendaItem handles DELETE /api/sheet/agenda/{index}
func (h *SheetHandler) DeleteAgendaItem(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(index); err != nil {
		writeEditError(w, err)
		return
	}

	slog.Info("agenda item deleted", "index", index)
	middleware.JSONResponse(w, http.StatusOK, h.sheetResponse())
}

// AddAgendaItem handles POST /api/sheet/agenda
func (h *SheetHandler) AddAgendaItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Type == "" {
		req.Type = models.TypeNormal
	}

	if err := h.store.Add(req.Type); err != nil {
		writeEditError(w, err)
		return
	}

	slog.Info("agenda item added", "type", req.Type)
	middleware.JSONResponse(w, http.StatusCreated, h.sheetResponse())
}

// ResetSheet handles POST /api/sheet/reset
func (h *SheetHandler) ResetSheet(w http.ResponseWriter, r *http.Request) {
	h.store.Reset()
	slog.Info("sheet reset to template")
	middleware.JSONResponse(w, http.StatusOK, h.sheetResponse())
}

func (h *SheetHandler) sheetResponse() models.SheetResponse {
	return models.SheetResponse{
		State:    h.store.Snapshot(),
		Weekdays: template.Weekdays(),
		Months:   template.Months(),
	}
}

// pathIndex parses the {index} path segment. Writes an error response and
// returns false when it is missing or not a number.
func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("index")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index is required")
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be a number")
		return 0, false
	}
	return index, true
}

// writeEditError maps edit failures to statuses: out-of-range indexes are
// 404, everything else a caller sent wrong is 400.
func writeEditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, agenda.ErrIndexOutOfRange), errors.Is(err, sheet.ErrOfficerOutOfRange):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	}
}
