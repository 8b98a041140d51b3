package calmath

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

// DaysPerWeek is the width of every grid row.
const DaysPerWeek = 7

// Week is one row of a month grid: seven consecutive dates starting on
// the configured first day of the week, plus the week number they carry.
type Week struct {
	Number int
	Days   [DaysPerWeek]caldate.Date
}

// MonthGrid builds the full grid for a displayed month: every week that
// contains at least one day of the month, padded with nearby-month days
// so each row holds exactly seven dates.
func MonthGrid(year int, month time.Month, cfg WeekConfig) []Week {
	first := caldate.New(year, month, 1)
	last := caldate.New(year, month, DaysInMonth(year, month))

	// Rewind to the week start at or before the first of the month.
	lead := (int(first.Weekday()) - int(cfg.FirstDayOfWeek) + DaysPerWeek) % DaysPerWeek
	cursor := first.AddDays(-lead)

	weeks := make([]Week, 0, 6)
	for !cursor.After(last) {
		var week Week
		week.Number = WeekNumber(cursor, cfg)
		for i := range week.Days {
			week.Days[i] = cursor
			cursor = cursor.AddDays(1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// WeekOf returns the grid row containing d.
func WeekOf(d caldate.Date, cfg WeekConfig) Week {
	lead := (int(d.Weekday()) - int(cfg.FirstDayOfWeek) + DaysPerWeek) % DaysPerWeek
	cursor := d.AddDays(-lead)

	var week Week
	week.Number = WeekNumber(cursor, cfg)
	for i := range week.Days {
		week.Days[i] = cursor
		cursor = cursor.AddDays(1)
	}
	return week
}

// WeekdayOrder lists the seven weekdays starting from the configured
// first day, in grid column order.
func WeekdayOrder(cfg WeekConfig) [DaysPerWeek]time.Weekday {
	var order [DaysPerWeek]time.Weekday
	for i := range order {
		order[i] = time.Weekday((int(cfg.FirstDayOfWeek) + i) % DaysPerWeek)
	}
	return order
}
