// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package agenda

import (
	"reflect"
	"testing"

	"github.com/melodymei/agendasheet/models"
)

func displayedTimes(items []models.AgendaItem) []string {
	times := make([]string, len(items))
	for i, item := range items {
		times[i] = item.Time
	}
	return times
}

func TestRecomputeTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		items []models.AgendaItem
		want  []string
	}{
		{
			name:  "accumulates over headers",
			start: "07:30",
			items: []models.AgendaItem{
				{Duration: "15m", Type: models.TypeNormal},
				{Duration: "15m", Type: models.TypeNormal},
				{Type: models.TypeSectionHeader},
				{Duration: "7m", Type: models.TypeNormal},
			},
			want: []string{"07:30", "07:45", "", "08:00"},
		},
		{
			name:  "first row anchored to start regardless of own duration",
			start: "19:00",
			items: []models.AgendaItem{
				{Duration: "90m", Type: models.TypeNormal},
				{Duration: "5m", Type: models.TypeNormal},
			},
			want: []string{"19:00", "20:30"},
		},
		{
			name:  "empty duration does not advance the clock",
			start: "10:00",
			items: []models.AgendaItem{
				{Duration: "10m", Type: models.TypeNormal},
				{Duration: "", Type: models.TypeNormal},
				{Duration: "5m", Type: models.TypeNormal},
			},
			want: []string{"10:00", "10:10", "10:10"},
		},
		{
			name:  "unparseable duration counts as zero",
			start: "10:00",
			items: []models.AgendaItem{
				{Duration: "10m", Type: models.TypeNormal},
				{Duration: "TBD", Type: models.TypeNormal},
				{Duration: "5m", Type: models.TypeNormal},
			},
			want: []string{"10:00", "10:10", "10:10"},
		},
		{
			name:  "break rows display a time",
			start: "09:00",
			items: []models.AgendaItem{
				{Duration: "30m", Type: models.TypeNormal},
				{Duration: "10m", Type: models.TypeBreak},
				{Duration: "5m", Type: models.TypeNormal},
			},
			want: []string{"09:00", "09:30", "09:40"},
		},
		{
			name:  "wraps across midnight without date tracking",
			start: "23:45",
			items: []models.AgendaItem{
				{Duration: "10m", Type: models.TypeNormal},
				{Duration: "10m", Type: models.TypeNormal},
				{Duration: "5m", Type: models.TypeNormal},
			},
			want: []string{"23:45", "23:55", "00:05"},
		},
		{
			name:  "empty list",
			start: "07:30",
			items: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecomputeTimes(tt.start, tt.items)
			if !reflect.DeepEqual(displayedTimes(got), tt.want) {
				t.Errorf("times = %v, want %v", displayedTimes(got), tt.want)
			}
		})
	}
}

func TestRecomputeTimesIdempotent(t *testing.T) {
	items := []models.AgendaItem{
		{Activity: "Reception", Role: "Reception Team", Duration: "15m", Type: models.TypeNormal},
		{Activity: "Opening Remark", Duration: "3m", Type: models.TypeNormal},
		{Activity: "PREPARED SPEECH", Type: models.TypeSectionHeader},
		{Activity: "Project Speech #1", Duration: "7m", Type: models.TypeNormal},
		{Activity: "Voting", Duration: "1.5m", Type: models.TypeNormal},
		{Activity: "Awards", Duration: "2m", Type: models.TypeNormal},
	}

	once := RecomputeTimes("07:30", items)
	twice := RecomputeTimes("07:30", once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("recompute is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestRecomputeTimesPreservesOtherFields(t *testing.T) {
	items := []models.AgendaItem{
		{Activity: "Reception", Role: "Reception Team", Name: "Jason", Duration: "15m", Type: models.TypeNormal, Highlight: true},
		{Activity: "Prep", Role: "...", Duration: "15m", Type: models.TypeNormal},
	}

	got := RecomputeTimes("07:30", items)

	if got[0].Activity != "Reception" || got[0].Role != "Reception Team" || got[0].Name != "Jason" || !got[0].Highlight {
		t.Errorf("non-time fields changed: %+v", got[0])
	}
	if items[0].Time != "" {
		t.Errorf("input slice was mutated: %+v", items[0])
	}
}

func TestRecomputeTimesSectionHeadersAlwaysBlank(t *testing.T) {
	items := []models.AgendaItem{
		{Duration: "15m", Type: models.TypeNormal},
		{Duration: "10m", Type: models.TypeSectionHeader}, // duration still advances the clock
		{Duration: "5m", Type: models.TypeNormal},
	}

	got := RecomputeTimes("08:00", items)

	if got[1].Time != "" {
		t.Errorf("section header displays %q, want empty", got[1].Time)
	}
	if got[2].Time != "08:25" {
		t.Errorf("row after header displays %q, want 08:25 (header duration accumulated)", got[2].Time)
	}
}
