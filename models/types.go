// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Agenda item type constants
const (
	TypeNormal        = "NORMAL"
	TypeSectionHeader = "SECTION_HEADER"
	TypeBreak         = "BREAK"
)

// Move direction constants
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// SchemaVersion tags persisted snapshot payloads. Payloads written before
// versioning existed carry no tag and are treated as version 1.
const SchemaVersion = 1

// Domain types
//
// JSON tags on domain types match the persisted snapshot payload exactly,
// so a state struct marshals directly into the stored blob.

type MeetingDetails struct {
	ClubName       string   `json:"clubName"`
	Number         int      `json:"number"`
	Theme          string   `json:"theme"`
	Quote          string   `json:"quote"`
	Date           string   `json:"date"`
	Time           string   `json:"time"` // HH:MM, the anchor all row times derive from
	Venue          string   `json:"venue"`
	Address        string   `json:"address"`
	WordOfTheDay   string   `json:"wordOfTheDay"`
	WordDefinition string   `json:"wordDefinition"`
	ZoomID         string   `json:"zoomId,omitempty"`
	ZoomPwd        string   `json:"zoomPwd,omitempty"`
	Etiquette      []string `json:"etiquette"`
}

type AgendaItem struct {
	Time      string `json:"time"` // derived for every row except index 0
	Activity  string `json:"activity"`
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"` // speaker/person, optional
	Duration  string `json:"duration"`       // free-form, e.g. "15m", "~10", "1.5m"
	Type      string `json:"type"`
	Highlight bool   `json:"highlight,omitempty"`
}

type Officer struct {
	Role string `json:"role"` // fixed by the template
	Name string `json:"name"` // the only editable field
}

type DateSelection struct {
	SelectedWeekday string `json:"selectedWeekday"`
	SelectedMonth   string `json:"selectedMonth"`
	SelectedDay     string `json:"selectedDay"` // free string, not validated
}

// SheetState is the complete editable state: the atomic unit of ownership,
// snapshot persistence, load, and reset. Partial replacement is never done.
type SheetState struct {
	Details     MeetingDetails `json:"details"`
	AgendaItems []AgendaItem   `json:"agendaItems"`
	Officers    []Officer      `json:"officers"`
	Date        DateSelection  `json:"date"`
}

// Request types

type DetailChangeRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type OfficerChangeRequest struct {
	Name string `json:"name"`
}

type AgendaFieldChangeRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type MoveItemRequest struct {
	Direction string `json:"direction"`
}

type AddItemRequest struct {
	Type string `json:"type"`
}

type DateChangeRequest struct {
	SelectedWeekday string `json:"selected_weekday"`
	SelectedMonth   string `json:"selected_month"`
	SelectedDay     string `json:"selected_day"`
}

// Response types

type SheetResponse struct {
	State    SheetState `json:"state"`
	Weekdays []string   `json:"weekdays"`
	Months   []string   `json:"months"`
}

type SaveSnapshotResponse struct {
	SnapshotID string    `json:"snapshot_id"`
	SavedAt    time.Time `json:"saved_at"`
}

type SnapshotInfo struct {
	ID            string    `json:"id"`
	SchemaVersion int       `json:"schema_version"`
	SavedAt       time.Time `json:"saved_at"`
	SavedAgo      string    `json:"saved_ago"`
}

type ListSnapshotsResponse struct {
	Snapshots []SnapshotInfo `json:"snapshots"`
}

type RestoreSnapshotResponse struct {
	SnapshotID string     `json:"snapshot_id"`
	State      SheetState `json:"state"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
