package caldate

import (
	"fmt"
	"time"
)

// Date is a timezone-naive calendar day. The zero value is not a valid
// date; use New or FromTime to construct one. All operations return new
// values, the receiver is never mutated.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New constructs a Date. Out-of-range components are normalized the same
// way time.Date normalizes them (e.g. January 32 becomes February 1).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime extracts the calendar day from t, discarding time-of-day and
// location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on the date. UTC keeps date arithmetic
// independent of the host timezone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// YearDay returns the ordinal day within the year, 1-based.
func (d Date) YearDay() int {
	return d.Time().YearDay()
}

// AddDays returns the date n days after d. Negative n steps backwards.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns the date n months after d, normalized by time.AddDate.
func (d Date) AddMonths(n int) Date {
	return FromTime(d.Time().AddDate(0, n, 0))
}

// Equal reports calendar-day equality: same day, month and year.
func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d falls strictly after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Compare returns -1, 0 or 1 depending on whether d is before, equal to
// or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as ISO 8601 (yyyy-mm-dd).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Contains reports whether dates includes a calendar-day match for d.
func Contains(dates []Date, d Date) bool {
	for _, candidate := range dates {
		if candidate.Equal(d) {
			return true
		}
	}
	return false
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// DateTime couples a Date with an optional wall-clock time. It is used by
// the datetime picker variant; the calendar engine itself only ever looks
// at the Date part.
type DateTime struct {
	Date
	Hour   int
	Minute int
}

// At attaches a time-of-day to the date.
func (d Date) At(hour, minute int) DateTime {
	return DateTime{Date: d, Hour: hour, Minute: minute}
}

// Time returns the moment in UTC.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, 0, 0, time.UTC)
}

// String formats the value as "yyyy-mm-dd hh:mm".
func (dt DateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d", dt.Date.String(), dt.Hour, dt.Minute)
}
