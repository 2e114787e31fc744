// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package capture prints the agenda page to PDF using headless Chromium.
// It navigates to the server's own /print view, waits for the
// data-ready marker, and returns the PDF bytes for download.
package capture
