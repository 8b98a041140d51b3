package selectable

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

// IsSelectable reports whether the user may choose d while displayedMonth
// is shown.
//
// Every applicable rule casts an independent vote into a validity list;
// the date is selectable iff no vote is negative (an empty list means
// selectable). The allow-list is special on both sides: a calendar-day
// match returns true immediately, overriding every other rule, while
// each entry that does NOT match casts a negative vote. A non-empty
// allow-list that never matches therefore forces the date unselectable.
// That voting behavior is relied upon by callers and is pinned by tests;
// do not "simplify" it into a plain membership check.
func IsSelectable(d caldate.Date, c Constraints, displayedMonth time.Month) bool {
	var votes []bool

	if c.MinDate != nil {
		votes = append(votes, !d.Before(*c.MinDate))
	}
	if c.MaxDate != nil {
		votes = append(votes, !d.After(*c.MaxDate))
	}
	if c.RestrictToCurrentMonth {
		votes = append(votes, d.Month == displayedMonth)
	}
	for _, wd := range c.UnselectableWeekdays {
		if d.Weekday() == wd {
			votes = append(votes, false)
		}
	}
	for _, deny := range c.UnselectableDates {
		if d.Equal(deny) {
			votes = append(votes, false)
		}
	}

	for _, allow := range c.SelectableDates {
		if d.Equal(allow) {
			return true
		}
		votes = append(votes, false)
	}

	for _, ok := range votes {
		if !ok {
			return false
		}
	}
	return true
}

// InBounds reports whether d lies within the min/max window, ignoring
// every other rule. Keyboard navigation uses it to detect when a step
// crosses a bound.
func InBounds(d caldate.Date, c Constraints) bool {
	if c.MinDate != nil && d.Before(*c.MinDate) {
		return false
	}
	if c.MaxDate != nil && d.After(*c.MaxDate) {
		return false
	}
	return true
}
