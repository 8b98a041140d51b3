// Package selectable decides which calendar days the user may choose.
package selectable

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	almanacerrors "github.com/alexisbeaulieu97/almanac/pkg/errors"
)

// Constraints bounds the choosable dates of a picker. All fields are
// optional; the zero value allows every date.
//
// SelectableDates is an allow-list with override semantics: a
// calendar-day match wins over every other rule. A non-empty allow-list
// that never matches forces the date unselectable (see IsSelectable).
type Constraints struct {
	MinDate              *caldate.Date
	MaxDate              *caldate.Date
	SelectableDates      []caldate.Date
	UnselectableDates    []caldate.Date
	UnselectableWeekdays []time.Weekday
	// RestrictToCurrentMonth marks nearby-month days unselectable while
	// they remain visible.
	RestrictToCurrentMonth bool
}

// Validate fails fast on contract violations so malformed constraints
// surface at the boundary instead of silently disabling dates.
func (c Constraints) Validate() error {
	if c.MinDate != nil && c.MaxDate != nil && c.MaxDate.Before(*c.MinDate) {
		return almanacerrors.NewValidationError("maxDate",
			"maxDate precedes minDate", nil)
	}
	for _, wd := range c.UnselectableWeekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return almanacerrors.NewValidationError("unselectableWeekdays",
				"weekday out of range", nil)
		}
	}
	return nil
}
