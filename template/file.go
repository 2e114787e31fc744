// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/melodymei/agendasheet/models"
)

// fileTemplate is the YAML shape of an on-disk sheet template. Every field
// is optional; missing values fall back to the built-in default so partial
// templates (just a club name and officer list, say) work.
type fileTemplate struct {
	Details  *fileDetails  `yaml:"details"`
	Agenda   []fileRow     `yaml:"agenda"`
	Officers []fileOfficer `yaml:"officers"`
	Date     *fileDate     `yaml:"date"`
}

type fileDetails struct {
	ClubName       string   `yaml:"club_name"`
	Number         int      `yaml:"number"`
	Theme          string   `yaml:"theme"`
	Quote          string   `yaml:"quote"`
	Date           string   `yaml:"date"`
	Time           string   `yaml:"time"`
	Venue          string   `yaml:"venue"`
	Address        string   `yaml:"address"`
	WordOfTheDay   string   `yaml:"word_of_the_day"`
	WordDefinition string   `yaml:"word_definition"`
	ZoomID         string   `yaml:"zoom_id"`
	ZoomPwd        string   `yaml:"zoom_pwd"`
	Etiquette      []string `yaml:"etiquette"`
}

type fileRow struct {
	Activity string `yaml:"activity"`
	Role     string `yaml:"role"`
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
	Type     string `yaml:"type"`
}

type fileOfficer struct {
	Role string `yaml:"role"`
	Name string `yaml:"name"`
}

type fileDate struct {
	Weekday string `yaml:"weekday"`
	Month   string `yaml:"month"`
	Day     string `yaml:"day"`
}

// LoadFile reads a YAML sheet template and merges it over the built-in
// default. Rows with an empty type default to NORMAL; rows typed as section
// headers keep no duration.
func LoadFile(path string) (models.SheetState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.SheetState{}, fmt.Errorf("template: read %s: %w", path, err)
	}

	var ft fileTemplate
	if err := yaml.Unmarshal(raw, &ft); err != nil {
		return models.SheetState{}, fmt.Errorf("template: parse %s: %w", path, err)
	}

	return ft.merge(Default()), nil
}

// merge overlays the file template onto base, field by field for details and
// wholesale for the agenda, officer, and date sections.
func (ft fileTemplate) merge(base models.SheetState) models.SheetState {
	out := base

	if d := ft.Details; d != nil {
		if d.ClubName != "" {
			out.Details.ClubName = d.ClubName
		}
		if d.Number != 0 {
			out.Details.Number = d.Number
		}
		if d.Theme != "" {
			out.Details.Theme = d.Theme
		}
		if d.Quote != "" {
			out.Details.Quote = d.Quote
		}
		if d.Date != "" {
			out.Details.Date = d.Date
		}
		if d.Time != "" {
			out.Details.Time = d.Time
		}
		if d.Venue != "" {
			out.Details.Venue = d.Venue
		}
		if d.Address != "" {
			out.Details.Address = d.Address
		}
		if d.WordOfTheDay != "" {
			out.Details.WordOfTheDay = d.WordOfTheDay
		}
		if d.WordDefinition != "" {
			out.Details.WordDefinition = d.WordDefinition
		}
		if d.ZoomID != "" {
			out.Details.ZoomID = d.ZoomID
		}
		if d.ZoomPwd != "" {
			out.Details.ZoomPwd = d.ZoomPwd
		}
		if len(d.Etiquette) > 0 {
			out.Details.Etiquette = d.Etiquette
		}
	}

	if len(ft.Agenda) > 0 {
		rows := make([]models.AgendaItem, len(ft.Agenda))
		for i, r := range ft.Agenda {
			itemType := r.Type
			if itemType == "" {
				itemType = models.TypeNormal
			}
			rows[i] = models.AgendaItem{
				Activity: r.Activity,
				Role:     r.Role,
				Name:     r.Name,
				Duration: r.Duration,
				Type:     itemType,
			}
		}
		out.AgendaItems = rows
	}

	if len(ft.Officers) > 0 {
		officers := make([]models.Officer, len(ft.Officers))
		for i, o := range ft.Officers {
			officers[i] = models.Officer{Role: o.Role, Name: o.Name}
		}
		out.Officers = officers
	}

	if d := ft.Date; d != nil {
		if d.Weekday != "" {
			out.Date.SelectedWeekday = d.Weekday
		}
		if d.Month != "" {
			out.Date.SelectedMonth = d.Month
		}
		if d.Day != "" {
			out.Date.SelectedDay = d.Day
		}
	}

	return out
}
