// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/melodymei/agendasheet/agenda"
	"github.com/melodymei/agendasheet/models"
	"github.com/melodymei/agendasheet/template"
)

func newTestStore() *Store {
	return NewStore(models.SheetState{
		Details: models.MeetingDetails{
			ClubName: "Test Club",
			Number:   1,
			Time:     "07:30",
		},
		AgendaItems: []models.AgendaItem{
			{Activity: "Reception", Duration: "15m", Type: models.TypeNormal},
			{Activity: "Opening", Duration: "15m", Type: models.TypeNormal},
			{Activity: "SPEECHES", Type: models.TypeSectionHeader},
			{Activity: "Speech", Duration: "7m", Type: models.TypeNormal},
		},
		Officers: []models.Officer{
			{Role: "PRESIDENT", Name: "Ann"},
			{Role: "SECRETARY", Name: "Ben"},
		},
		Date: models.DateSelection{SelectedWeekday: "Sunday", SelectedMonth: "January", SelectedDay: "4"},
	})
}

func rowTimes(st models.SheetState) []string {
	times := make([]string, len(st.AgendaItems))
	for i, item := range st.AgendaItems {
		times[i] = item.Time
	}
	return times
}

func TestNewStoreRecomputesSeedTimes(t *testing.T) {
	st := newTestStore().Snapshot()

	want := []string{"07:30", "07:45", "", "08:00"}
	if !reflect.DeepEqual(rowTimes(st), want) {
		t.Errorf("times = %v, want %v", rowTimes(st), want)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestStore()
	snap := s.Snapshot()
	snap.AgendaItems[0].Activity = "hijacked"
	snap.Officers[0].Name = "hijacked"

	if got := s.Snapshot(); got.AgendaItems[0].Activity != "Reception" || got.Officers[0].Name != "Ann" {
		t.Error("snapshot shares memory with store state")
	}
}

func TestSetDetailTimeReschedules(t *testing.T) {
	s := newTestStore()
	if err := s.SetDetail("time", "08:00"); err != nil {
		t.Fatal(err)
	}

	want := []string{"08:00", "08:15", "", "08:30"}
	if got := rowTimes(s.Snapshot()); !reflect.DeepEqual(got, want) {
		t.Errorf("times = %v, want %v", got, want)
	}
}

func TestSetDetail(t *testing.T) {
	s := newTestStore()

	if err := s.SetDetail("theme", "Fresh Starts"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDetail("number", "48"); err != nil {
		t.Fatal(err)
	}

	st := s.Snapshot()
	if st.Details.Theme != "Fresh Starts" || st.Details.Number != 48 {
		t.Errorf("details = %+v", st.Details)
	}

	if err := s.SetDetail("number", "forty-eight"); !errors.Is(err, ErrBadDetailValue) {
		t.Errorf("err = %v, want ErrBadDetailValue", err)
	}
	if err := s.SetDetail("etiquette", "x"); !errors.Is(err, ErrUnknownDetailKey) {
		t.Errorf("err = %v, want ErrUnknownDetailKey", err)
	}
}

func TestSetAgendaFieldRecomputeTriggers(t *testing.T) {
	s := newTestStore()

	// Duration edit moves every later row.
	if err := s.SetAgendaField(0, "duration", "30m"); err != nil {
		t.Fatal(err)
	}
	want := []string{"07:30", "08:00", "", "08:15"}
	if got := rowTimes(s.Snapshot()); !reflect.DeepEqual(got, want) {
		t.Errorf("after duration edit times = %v, want %v", got, want)
	}

	// Activity edit leaves the schedule alone.
	if err := s.SetAgendaField(1, "activity", "Warm Welcome"); err != nil {
		t.Fatal(err)
	}
	if got := rowTimes(s.Snapshot()); !reflect.DeepEqual(got, want) {
		t.Errorf("after activity edit times = %v, want %v", got, want)
	}

	// Type edit reschedules: demoting the header to a normal row gives it
	// a displayed time again.
	if err := s.SetAgendaField(2, "type", models.TypeNormal); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().AgendaItems[2].Time; got != "08:15" {
		t.Errorf("former header time = %q, want 08:15", got)
	}
}

func TestMoveDeleteAddRecompute(t *testing.T) {
	s := newTestStore()

	if err := s.Move(1, models.DirectionUp); err != nil {
		t.Fatal(err)
	}
	st := s.Snapshot()
	if st.AgendaItems[0].Activity != "Opening" {
		t.Errorf("move did not reorder: %q", st.AgendaItems[0].Activity)
	}
	if st.AgendaItems[0].Time != "07:30" {
		t.Errorf("new first row time = %q, want anchor 07:30", st.AgendaItems[0].Time)
	}

	if err := s.Delete(0); err != nil {
		t.Fatal(err)
	}
	st = s.Snapshot()
	if len(st.AgendaItems) != 3 || st.AgendaItems[0].Activity != "Reception" {
		t.Errorf("after delete: %+v", st.AgendaItems)
	}
	if st.AgendaItems[0].Time != "07:30" {
		t.Errorf("times not recomputed after delete: %q", st.AgendaItems[0].Time)
	}

	if err := s.Add(models.TypeNormal); err != nil {
		t.Fatal(err)
	}
	st = s.Snapshot()
	last := st.AgendaItems[len(st.AgendaItems)-1]
	if last.Activity != "New Activity" || last.Time == "" {
		t.Errorf("appended row not scheduled: %+v", last)
	}

	// Errors pass through from the editor.
	if err := s.Delete(99); !errors.Is(err, agenda.ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetOfficerName(t *testing.T) {
	s := newTestStore()

	if err := s.SetOfficerName(1, "Carla"); err != nil {
		t.Fatal(err)
	}
	st := s.Snapshot()
	if st.Officers[1].Name != "Carla" || st.Officers[1].Role != "SECRETARY" {
		t.Errorf("officer = %+v", st.Officers[1])
	}

	if err := s.SetOfficerName(5, "Nobody"); !errors.Is(err, ErrOfficerOutOfRange) {
		t.Errorf("err = %v, want ErrOfficerOutOfRange", err)
	}
}

func TestResetRestoresTemplate(t *testing.T) {
	s := NewStore(template.Default())
	before := s.Snapshot()

	if err := s.SetDetail("theme", "changed"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(0); err != nil {
		t.Fatal(err)
	}
	s.SetDate(models.DateSelection{SelectedWeekday: "Monday", SelectedMonth: "May", SelectedDay: "1"})

	s.Reset()

	if got := s.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Error("reset did not restore the starting template")
	}
}

func TestReplaceSwapsWholeState(t *testing.T) {
	s := newTestStore()

	incoming := models.SheetState{
		Details: models.MeetingDetails{ClubName: "Other Club", Time: "19:00"},
		AgendaItems: []models.AgendaItem{
			{Activity: "Welcome", Duration: "10m", Type: models.TypeNormal},
			{Activity: "Talk", Duration: "20m", Type: models.TypeNormal},
		},
		Officers: []models.Officer{{Role: "PRESIDENT", Name: "Zoe"}},
		Date:     models.DateSelection{SelectedWeekday: "Friday", SelectedMonth: "March", SelectedDay: "7"},
	}
	s.Replace(incoming)

	st := s.Snapshot()
	if st.Details.ClubName != "Other Club" || len(st.AgendaItems) != 2 || len(st.Officers) != 1 {
		t.Errorf("replace incomplete: %+v", st)
	}
	if got := rowTimes(st); !reflect.DeepEqual(got, []string{"19:00", "19:10"}) {
		t.Errorf("times not recomputed on replace: %v", got)
	}
}

// Concurrent edits must serialize without losing writes or corrupting the
// derived schedule.
func TestConcurrentEdits(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			switch n % 3 {
			case 0:
				_ = s.SetAgendaField(0, "duration", fmt.Sprintf("%dm", n+1))
			case 1:
				_ = s.SetDetail("theme", fmt.Sprintf("theme-%d", n))
			case 2:
				_ = s.Add(models.TypeNormal)
			}
		}(i)
	}
	wg.Wait()

	st := s.Snapshot()
	// 16 adds on top of 4 seed rows.
	if len(st.AgendaItems) != 20 {
		t.Errorf("rows = %d, want 20", len(st.AgendaItems))
	}
	if st.AgendaItems[0].Time != "07:30" {
		t.Errorf("anchor time = %q, want 07:30", st.AgendaItems[0].Time)
	}

	// Recompute must hold after concurrent writes: re-running it changes nothing.
	recomputed := agenda.RecomputeTimes(st.Details.Time, st.AgendaItems)
	if !reflect.DeepEqual(recomputed, st.AgendaItems) {
		t.Error("stored schedule is not a recompute fixed point")
	}
}
