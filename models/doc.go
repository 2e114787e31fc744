// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the sheet API.

# Domain Types

The editable state of one agenda sheet:

  - MeetingDetails: club identity, theme, quote, venue, word of the day,
    etiquette, and the authoritative meeting start time (HH:MM)
  - AgendaItem: one scheduled row (time, activity, role, duration, type)
  - Officer: a club officer slot (fixed role label, editable name)
  - DateSelection: the weekday/month/day selector values
  - SheetState: the four pieces above as one atomic unit

Domain types carry camelCase JSON tags matching the persisted snapshot
payload, so SheetState marshals directly into the stored blob:

	{"details": {...}, "agendaItems": [...], "officers": [...], "date": {...}}

# Request Types

Types for parsing incoming JSON:

  - DetailChangeRequest: key, value
  - OfficerChangeRequest: name
  - AgendaFieldChangeRequest: field, value
  - MoveItemRequest: direction ("up" or "down")
  - AddItemRequest: type
  - DateChangeRequest: selected_weekday, selected_month, selected_day

# Response Types

Types for JSON responses:

  - SheetResponse: state plus weekday/month vocabularies
  - SaveSnapshotResponse: snapshot_id, saved_at
  - ListSnapshotsResponse: snapshots (newest first, humanized ages)
  - RestoreSnapshotResponse: snapshot_id, state
  - ErrorResponse: error, message

# Constants

Agenda row types:

	TypeNormal        = "NORMAL"
	TypeSectionHeader = "SECTION_HEADER"
	TypeBreak         = "BREAK"

Move directions:

	DirectionUp   = "up"
	DirectionDown = "down"
*/
package models
