// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 portrait in inches, the shape a printed agenda is handed out in.
const (
	DefaultPaperWidth  = 8.27
	DefaultPaperHeight = 11.69
	DefaultTimeoutSec  = 30
)

// Options defines parameters for a Chromium-based print capture.
type Options struct {
	// URL to print, e.g. "http://127.0.0.1:8323/print".
	URL string

	// PaperWidth and PaperHeight are in inches. If zero, A4 is used.
	PaperWidth  float64
	PaperHeight float64

	// Timeout bounds the entire capture operation. If zero, a sane default
	// (DefaultTimeoutSec) is used.
	Timeout time.Duration
}

// PrintPDF launches a headless Chromium instance via chromedp, navigates to
// opts.URL, waits for the page to signal readiness, and prints it to PDF.
//
// Rendering-complete condition: the page body exposes a data-ready
// attribute (<body data-ready="true">); printing waits until
// `[data-ready="true"]` is visible.
func PrintPDF(parentCtx context.Context, opts Options) ([]byte, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("capture: URL is required")
	}
	if opts.PaperWidth <= 0 {
		opts.PaperWidth = DefaultPaperWidth
	}
	if opts.PaperHeight <= 0 {
		opts.PaperHeight = DefaultPaperHeight
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Duration(DefaultTimeoutSec) * time.Second
	}

	// Create a new chromedp context.
	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	// Apply timeout to the entire capture sequence.
	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var pdf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(opts.URL),
		chromedp.WaitVisible(`[data-ready="true"]`, chromedp.ByQuery),
		// Small extra delay to allow final paints.
		chromedp.Sleep(500 * time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("capture: chromedp run failed: %w", err)
	}

	return pdf, nil
}
