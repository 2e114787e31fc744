// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package render turns sheet state into the agenda HTML page. The same
// template backs the editable view and the print view; Page.Editable
// decides whether the editing script and toolbar are emitted. The body
// carries data-ready="true" so the PDF capture knows the page is complete.
package render
