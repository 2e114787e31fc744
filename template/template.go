// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package template

import "github.com/melodymei/agendasheet/models"

// Weekdays returns the weekday vocabulary for the date selector.
func Weekdays() []string {
	return []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}
}

// Months returns the month vocabulary for the date selector.
func Months() []string {
	return []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}

// Default returns the built-in sheet template. Row times here are only
// seeds; the state container recomputes them from the start time before the
// sheet is ever published.
func Default() models.SheetState {
	return models.SheetState{
		Details: models.MeetingDetails{
			ClubName: "Shantou Toastmasters",
			Number:   47,
			Theme:    "New Year Wishes",
			Quote:    "Great things never came from comfort zones. Let us explore our potential together in this wonderful meeting session.",
			Date:     "Sunday, January 4",
			Time:     "07:30",
			Venue:    "ZHISHU SPACE",
			Address:  "汕头市龙湖区梅溪西路2号知书空间\nZHISHU SPACE, MEIXI WEST ROAD NO. 2",
			WordOfTheDay: "FORWARD-LOOKING",
			Etiquette: []string{
				"Please turn off your mobile phone or turn it into silent mode!",
				"Do not talk about topics of Politics, Religion or Sex!",
				"Do not walk around when speakers present their speeches!",
				"Please shake hands on and off the stage.",
			},
		},
		AgendaItems: defaultAgenda(),
		Officers: []models.Officer{
			{Role: "PRESIDENT", Name: "Christina Chen"},
			{Role: "VP EDUCATION", Name: "Ellie Ding"},
			{Role: "VP MEMBERSHIP", Name: "Namen Zhou"},
			{Role: "VP PUBLIC RELATIONS", Name: "Alexandra Huang"},
			{Role: "SECRETARY", Name: "Melody Mei"},
			{Role: "TREASURER", Name: "Harriet Zeng"},
			{Role: "SERGEANT AT ARMS", Name: "Jason Chen"},
		},
		Date: models.DateSelection{
			SelectedWeekday: "Sunday",
			SelectedMonth:   "January",
			SelectedDay:     "4",
		},
	}
}

func defaultAgenda() []models.AgendaItem {
	return []models.AgendaItem{
		{Time: "07:30", Activity: "Reception", Role: "Reception Team", Duration: "15m", Type: models.TypeNormal},
		{Time: "07:45", Activity: "Meeting Preparation", Role: "...", Duration: "15m", Type: models.TypeNormal},
		{Time: "08:00", Activity: "Opening Remark", Role: "...", Duration: "3m", Type: models.TypeNormal},
		{Time: "08:03", Activity: "Timer Introduction", Role: "...", Duration: "2m", Type: models.TypeNormal},
		{Time: "08:05", Activity: "Grammarian Introduction", Role: "...", Duration: "2m", Type: models.TypeNormal},
		{Time: "08:07", Activity: "General Evaluator Introduction", Role: "...", Duration: "2m", Type: models.TypeNormal},
		{Time: "08:09", Activity: "Guest Introduction & Icebreak", Role: "...", Duration: "15m", Type: models.TypeNormal},

		{Activity: "PREPARED SPEECH", Type: models.TypeSectionHeader},
		{Time: "08:24", Activity: "Project Speech #1", Role: "...", Duration: "7m", Type: models.TypeNormal},
		{Time: "08:31", Activity: "Project Speech #2", Role: "...", Duration: "7m", Type: models.TypeNormal},
		{Time: "08:38", Activity: "Evaluation Speech", Role: "...", Duration: "3m", Type: models.TypeNormal},
		{Time: "08:41", Activity: "Evaluation Speech", Role: "...", Duration: "3m", Type: models.TypeNormal},
		{Time: "08:44", Activity: "Group Photo", Role: "...", Duration: "10m", Type: models.TypeNormal},

		{Activity: "BREAK TIME 10 MIN", Type: models.TypeSectionHeader},
		{Time: "08:54", Activity: "Table Topic Speeches", Role: "...", Duration: "30m", Type: models.TypeNormal},
		{Time: "09:24", Activity: "Table Topic Evaluation", Role: "...", Duration: "6m", Type: models.TypeNormal},
		{Time: "09:30", Activity: "Timer Report", Role: "...", Duration: "3m", Type: models.TypeNormal},
		{Time: "09:33", Activity: "Grammarian Report", Role: "...", Duration: "3m", Type: models.TypeNormal},
		{Time: "09:36", Activity: "General Evaluator Report", Role: "...", Duration: "10m", Type: models.TypeNormal},

		{Activity: "CONCLUSION", Type: models.TypeSectionHeader},
		{Time: "09:46", Activity: "Voting for Best Facilitator", Role: "...", Duration: "1.5m", Type: models.TypeNormal},
		{Time: "09:48", Activity: "Moment of Truth", Role: "...", Duration: "5m", Type: models.TypeNormal},
		{Time: "09:53", Activity: "Awards", Role: "...", Duration: "2m", Type: models.TypeNormal},
	}
}
