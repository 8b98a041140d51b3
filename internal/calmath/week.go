// Package calmath implements the week-numbering arithmetic used by the
// calendar widgets. The algorithm is the ISO 8601 generalization
// parameterized by the first day of the week and the first-week rule, so
// both ISO weeks (Monday, rule 4) and North-American weeks (Sunday,
// rule 1) fall out of the same formulas.
package calmath

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

// WeekConfig fixes the week boundaries for a calendar instance. Changing
// either field changes the week numbering of every date.
type WeekConfig struct {
	// FirstDayOfWeek is the weekday a week starts on.
	FirstDayOfWeek time.Weekday
	// FirstWeekRule selects the first-week rule. Week 1 is the week
	// containing January 7+FirstDayOfWeek-FirstWeekRule. Legal values
	// are 1 and 4; 4 with Monday weeks is exactly ISO 8601 (week 1
	// contains January 4).
	FirstWeekRule int
}

// ISOWeekConfig returns the ISO 8601 configuration: weeks start on
// Monday and week 1 contains January 4.
func ISOWeekConfig() WeekConfig {
	return WeekConfig{FirstDayOfWeek: time.Monday, FirstWeekRule: 4}
}

// IsLeapYear applies the proleptic Gregorian leap rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstWeekOffset is the number of days before January 1 that belong to
// week 1, negative when week 1 starts inside the previous year.
func firstWeekOffset(year int, cfg WeekConfig) int {
	dow := int(cfg.FirstDayOfWeek)
	// fwd is the January day that is guaranteed to sit inside week 1.
	fwd := 7 + dow - cfg.FirstWeekRule
	fwdWeekday := int(caldate.New(year, time.January, fwd).Weekday())
	return -((7 + fwdWeekday - dow) % 7) + fwd - 1
}

// WeeksInYear returns the number of weeks in year under cfg. The result
// is always 52 or 53.
func WeeksInYear(year int, cfg WeekConfig) int {
	return (DaysInYear(year) - firstWeekOffset(year, cfg) + firstWeekOffset(year+1, cfg)) / 7
}

// WeekNumber computes the week-of-year for d under cfg. The result is in
// [1, 53]. Dates in the first days of January may belong to the last
// week of the previous year, and dates in late December may belong to
// week 1 of the next year; WeekYear exposes which year the week counts
// against.
func WeekNumber(d caldate.Date, cfg WeekConfig) int {
	week, _ := WeekYear(d, cfg)
	return week
}

// WeekYear returns the week number for d together with the year that
// week belongs to.
func WeekYear(d caldate.Date, cfg WeekConfig) (week, year int) {
	offset := firstWeekOffset(d.Year, cfg)
	week = floorDiv(d.YearDay()-offset-1, 7) + 1

	switch {
	case week < 1:
		year = d.Year - 1
		week += WeeksInYear(year, cfg)
	case week > WeeksInYear(d.Year, cfg):
		year = d.Year + 1
		week -= WeeksInYear(d.Year, cfg)
	default:
		year = d.Year
	}
	return week, year
}

// floorDiv divides rounding toward negative infinity. Integer division
// in Go truncates toward zero, which is wrong for the dates that fall in
// the previous year's last week.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
