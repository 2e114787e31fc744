// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package agenda

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/melodymei/agendasheet/models"
)

var (
	ErrIndexOutOfRange = errors.New("agenda index out of range")
	ErrUnknownField    = errors.New("unknown agenda field")
	ErrUnknownType     = errors.New("unknown agenda item type")
	ErrUnknownDirection = errors.New("unknown move direction")
)

// FieldAffectsSchedule reports whether editing the named field can change
// row scheduling. Only duration and type edits require a recompute pass;
// text edits (activity, role, name) must not trigger one.
func FieldAffectsSchedule(field string) bool {
	return field == "duration" || field == "type"
}

// UpdateField returns a copy of items with one field replaced on the row at
// index. An out-of-range index or unknown field name is rejected; the caller
// derives indices from the current list, so either means a stale or bad
// request.
func UpdateField(items []models.AgendaItem, index int, field, value string) ([]models.AgendaItem, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: update at %d with %d rows", ErrIndexOutOfRange, index, len(items))
	}

	out := cloneItems(items)
	switch field {
	case "time":
		out[index].Time = value
	case "activity":
		out[index].Activity = value
	case "role":
		out[index].Role = value
	case "name":
		out[index].Name = value
	case "duration":
		out[index].Duration = value
	case "type":
		if !validType(value) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, value)
		}
		out[index].Type = value
	case "highlight":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: highlight wants a boolean, got %q", ErrUnknownField, value)
		}
		out[index].Highlight = on
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return out, nil
}

// MoveItem swaps the row at index with its neighbor in the given direction.
// A move that would cross the list boundary (first row up, last row down) is
// a defined no-op returning an equal list. An out-of-range index is an error.
func MoveItem(items []models.AgendaItem, index int, direction string) ([]models.AgendaItem, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: move at %d with %d rows", ErrIndexOutOfRange, index, len(items))
	}

	var target int
	switch direction {
	case models.DirectionUp:
		target = index - 1
	case models.DirectionDown:
		target = index + 1
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	out := cloneItems(items)
	if target < 0 || target >= len(out) {
		return out, nil
	}

	out[index], out[target] = out[target], out[index]
	return out, nil
}

// DeleteItem removes the row at index, shifting subsequent rows down one
// position. Out-of-range indices are rejected. Confirmation belongs to the
// interaction boundary, not here.
func DeleteItem(items []models.AgendaItem, index int) ([]models.AgendaItem, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: delete at %d with %d rows", ErrIndexOutOfRange, index, len(items))
	}

	out := make([]models.AgendaItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, nil
}

// AddItem appends a new row of the given type with type-dependent defaults.
// Section headers start as placeholder header text with no duration; normal
// and break rows start as a placeholder activity with a 5-minute duration.
func AddItem(items []models.AgendaItem, itemType string) ([]models.AgendaItem, error) {
	if !validType(itemType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, itemType)
	}

	item := models.AgendaItem{
		Activity: "New Activity",
		Role:     "...",
		Duration: "5m",
		Type:     itemType,
	}
	if itemType == models.TypeSectionHeader {
		item.Activity = "NEW SECTION"
		item.Duration = ""
	}

	out := cloneItems(items)
	return append(out, item), nil
}

func validType(itemType string) bool {
	switch itemType {
	case models.TypeNormal, models.TypeSectionHeader, models.TypeBreak:
		return true
	}
	return false
}

func cloneItems(items []models.AgendaItem) []models.AgendaItem {
	out := make([]models.AgendaItem, len(items))
	copy(out, items)
	return out
}
