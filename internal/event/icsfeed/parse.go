package icsfeed

import (
	"bytes"
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	almanacerrors "github.com/alexisbeaulieu97/almanac/pkg/errors"
)

// occurrenceCap bounds recurrence expansion so a malformed unbounded
// rule cannot blow up a render.
const occurrenceCap = 1000

// Parse converts an ICS payload into markers for every occurrence day
// inside the window. Recurring VEVENTs are expanded with their RRULE,
// honoring EXDATE; VEVENTs that fail to parse are skipped so one broken
// entry does not take the whole feed down.
func Parse(body []byte, src Source, window Window) ([]event.Marker, error) {
	if len(body) == 0 {
		return nil, almanacerrors.NewFeedError(src.Name, errors.New("empty ICS body"))
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, almanacerrors.NewParseError(src.Name, 0, err)
	}

	markerType := src.Type
	if markerType == "" {
		markerType = "event"
	}

	var markers []event.Marker
	for _, ve := range cal.Events() {
		days, perr := occurrenceDays(ve, window)
		if perr != nil {
			continue
		}
		label := summary(ve)
		for _, day := range days {
			markers = append(markers, event.Marker{
				Date:  day,
				Type:  markerType,
				Label: label,
			})
		}
	}

	return markers, nil
}

// occurrenceDays returns the calendar days on which the VEVENT occurs
// within the window.
func occurrenceDays(ve *ical.VEvent, window Window) ([]caldate.Date, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		// All-day events carry a DATE value that GetStartAt refuses.
		start, err = allDayStart(ve)
		if err != nil {
			return nil, err
		}
	}

	rawRule := ""
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		rawRule = p.Value
	}

	if rawRule == "" {
		day := caldate.FromTime(start)
		if !window.contains(day) {
			return nil, nil
		}
		return []caldate.Date{day}, nil
	}

	rule, err := rrule.StrToRRule(rawRule)
	if err != nil {
		return nil, err
	}
	rule.DTStart(start)

	var set rrule.Set
	set.RRule(rule)
	for _, ex := range exDates(ve) {
		set.ExDate(ex.In(start.Location()))
	}

	from := window.Start.Time()
	until := window.End.Time().Add(24*time.Hour - time.Nanosecond)
	times := set.Between(from.In(start.Location()), until.In(start.Location()), true)
	if len(times) > occurrenceCap {
		times = times[:occurrenceCap]
	}

	days := make([]caldate.Date, 0, len(times))
	for _, t := range times {
		days = append(days, caldate.FromTime(t))
	}
	return days, nil
}

func allDayStart(ve *ical.VEvent) (time.Time, error) {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil || p.Value == "" {
		return time.Time{}, errors.New("missing DTSTART")
	}
	return time.ParseInLocation("20060102", strings.TrimSpace(p.Value), time.UTC)
}

func exDates(ve *ical.VEvent) []time.Time {
	var out []time.Time
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// parseICSTime handles the basic DATE, DATE-TIME and UTC forms used by
// EXDATE values.
func parseICSTime(v string) (time.Time, error) {
	switch {
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, time.UTC)
	default:
		return time.ParseInLocation("20060102", v, time.UTC)
	}
}

func summary(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		return p.Value
	}
	return ""
}
