// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/melodymei/agendasheet/capture"
	"github.com/melodymei/agendasheet/cliparse"
	"github.com/melodymei/agendasheet/middleware"
)

type PrintHandler struct {
	cfg cliparse.Config
}

func NewPrintHandler(cfg cliparse.Config) *PrintHandler {
	return &PrintHandler{cfg: cfg}
}

// DownloadPDF handles GET /api/print/pdf
//
// Opens the server's own /print view in headless Chromium and streams
// the printed PDF back as a download.
func (h *PrintHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	baseURL := h.cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://127.0.0.1:%d", h.cfg.Port)
	}

	pdf, err := capture.PrintPDF(r.Context(), capture.Options{
		URL: baseURL + "/print",
	})
	if err != nil {
		slog.Error("failed to print agenda", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	slog.Info("agenda printed", "bytes", len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda.pdf"`)
	w.Write(pdf)
}
