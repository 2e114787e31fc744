// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/melodymei/agendasheet/models"
)

//go:embed sheet.html
var sheetHTML string

var sheetTmpl = template.Must(template.New("sheet").Funcs(template.FuncMap{
	"isHeader": func(item models.AgendaItem) bool {
		return item.Type == models.TypeSectionHeader
	},
	"isBreak": func(item models.AgendaItem) bool {
		return item.Type == models.TypeBreak
	},
}).Parse(sheetHTML))

// Page is everything the sheet template needs. Editable toggles the
// client-side editing script; the print view renders the same markup
// without it.
type Page struct {
	State    models.SheetState
	Weekdays []string
	Months   []string
	Editable bool
}

// Render writes the sheet page as HTML.
func Render(w io.Writer, page Page) error {
	if err := sheetTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render sheet: %w", err)
	}
	return nil
}
