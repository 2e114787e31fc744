// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/melodymei/agendasheet/agenda"
	"github.com/melodymei/agendasheet/models"
)

var (
	ErrUnknownDetailKey  = errors.New("unknown detail key")
	ErrBadDetailValue    = errors.New("bad detail value")
	ErrOfficerOutOfRange = errors.New("officer index out of range")
)

// Store owns the process-wide editable sheet state. It is the only writer;
// every mutation applies an edit and then runs the recompute pass before the
// new state becomes observable, so readers and the snapshot store always see
// schedule-consistent state. A mutex serializes mutations, so concurrent
// editors apply one edit at a time.
type Store struct {
	mu      sync.Mutex
	state   models.SheetState
	initial models.SheetState // the template Reset restores
}

// NewStore creates a store seeded from the given template. The template's
// row times are recomputed immediately; seed times are never trusted.
func NewStore(initial models.SheetState) *Store {
	s := &Store{initial: cloneState(initial)}
	s.state = cloneState(initial)
	s.recompute()
	return s
}

// Snapshot returns a deep copy of the current state. Callers can hold it
// across edits without observing later mutations.
func (s *Store) Snapshot() models.SheetState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// SetDetail updates one meeting-detail field by its payload key. Changing
// "time" moves the schedule anchor and triggers a recompute; every other
// detail is cosmetic.
func (s *Store) SetDetail(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "clubName":
		s.state.Details.ClubName = value
	case "number":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: number wants an integer, got %q", ErrBadDetailValue, value)
		}
		s.state.Details.Number = n
	case "theme":
		s.state.Details.Theme = value
	case "quote":
		s.state.Details.Quote = value
	case "date":
		s.state.Details.Date = value
	case "time":
		s.state.Details.Time = value
		s.recompute()
	case "venue":
		s.state.Details.Venue = value
	case "address":
		s.state.Details.Address = value
	case "wordOfTheDay":
		s.state.Details.WordOfTheDay = value
	case "wordDefinition":
		s.state.Details.WordDefinition = value
	case "zoomId":
		s.state.Details.ZoomID = value
	case "zoomPwd":
		s.state.Details.ZoomPwd = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDetailKey, key)
	}

	return nil
}

// SetOfficerName updates the name on one officer slot. Roles are fixed by
// the template and cannot be edited.
func (s *Store) SetOfficerName(index int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Officers) {
		return fmt.Errorf("%w: %d with %d officers", ErrOfficerOutOfRange, index, len(s.state.Officers))
	}
	s.state.Officers[index].Name = name
	return nil
}

// SetAgendaField updates one field on one agenda row. Duration and type
// edits reschedule; activity/role/name edits deliberately do not.
func (s *Store) SetAgendaField(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := agenda.UpdateField(s.state.AgendaItems, index, field, value)
	if err != nil {
		return err
	}
	s.state.AgendaItems = items
	if agenda.FieldAffectsSchedule(field) {
		s.recompute()
	}
	return nil
}

// Move swaps an agenda row with its neighbor. Boundary moves are no-ops.
func (s *Store) Move(index int, direction string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := agenda.MoveItem(s.state.AgendaItems, index, direction)
	if err != nil {
		return err
	}
	s.state.AgendaItems = items
	s.recompute()
	return nil
}

// Delete removes an agenda row.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := agenda.DeleteItem(s.state.AgendaItems, index)
	if err != nil {
		return err
	}
	s.state.AgendaItems = items
	s.recompute()
	return nil
}

// Add appends a new agenda row of the given type.
func (s *Store) Add(itemType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := agenda.AddItem(s.state.AgendaItems, itemType)
	if err != nil {
		return err
	}
	s.state.AgendaItems = items
	s.recompute()
	return nil
}

// SetDate replaces the date selection wholesale.
func (s *Store) SetDate(sel models.DateSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Date = sel
}

// Reset restores the template the process started with.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneState(s.initial)
	s.recompute()
}

// Replace swaps in a fully loaded state, all four pieces together. Used by
// snapshot restore; callers must only invoke it with a successfully decoded
// snapshot so a failed load leaves current state untouched.
func (s *Store) Replace(st models.SheetState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneState(st)
	s.recompute()
}

// recompute runs the time accumulator over the current rows. Callers hold
// the lock.
func (s *Store) recompute() {
	s.state.AgendaItems = agenda.RecomputeTimes(s.state.Details.Time, s.state.AgendaItems)
}

func cloneState(st models.SheetState) models.SheetState {
	out := st

	out.AgendaItems = make([]models.AgendaItem, len(st.AgendaItems))
	copy(out.AgendaItems, st.AgendaItems)

	out.Officers = make([]models.Officer, len(st.Officers))
	copy(out.Officers, st.Officers)

	out.Details.Etiquette = make([]string, len(st.Details.Etiquette))
	copy(out.Details.Etiquette, st.Details.Etiquette)

	return out
}
