// Package selection models what the user has picked in a calendar
// widget. States are immutable values: every change replaces the whole
// state, there is no partial mutation.
package selection

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

// Mode determines how many dates a picker accepts.
type Mode int

const (
	ModeSingle Mode = iota
	ModeRange
	ModeMultiple
)

// String implements fmt.Stringer for logging and config round-trips.
func (m Mode) String() string {
	switch m {
	case ModeRange:
		return "range"
	case ModeMultiple:
		return "multiple"
	default:
		return "single"
	}
}

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return ModeSingle, true
	case "range":
		return ModeRange, true
	case "multiple":
		return ModeMultiple, true
	default:
		return ModeSingle, false
	}
}

// State is the committed selection. Exactly one of the shapes is active:
// empty, a single date, an ordered range, or a set of dates.
type State struct {
	single *caldate.Date
	start  *caldate.Date
	end    *caldate.Date
	many   []caldate.Date
}

// Empty returns the empty selection.
func Empty() State {
	return State{}
}

// Single selects exactly one date.
func Single(d caldate.Date) State {
	return State{single: &d}
}

// RangeStart begins a range selection: the start is committed, the end
// is still open.
func RangeStart(start caldate.Date) State {
	return State{start: &start}
}

// Range selects the ordered (start, end) pair. A reversed pair is
// reordered so start never follows end.
func Range(start, end caldate.Date) State {
	if end.Before(start) {
		start, end = end, start
	}
	return State{start: &start, end: &end}
}

// Multiple selects a set of dates. Duplicates are dropped and the set is
// kept in calendar order.
func Multiple(dates ...caldate.Date) State {
	unique := make([]caldate.Date, 0, len(dates))
	for _, d := range dates {
		if !caldate.Contains(unique, d) {
			unique = append(unique, d)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })
	return State{many: unique}
}

// IsEmpty reports whether nothing is selected.
func (s State) IsEmpty() bool {
	return s.single == nil && s.start == nil && s.end == nil && len(s.many) == 0
}

// Date returns the single selected date, if the state is a single
// selection.
func (s State) Date() (caldate.Date, bool) {
	if s.single == nil {
		return caldate.Date{}, false
	}
	return *s.single, true
}

// Bounds returns the range endpoints. ok is false unless both ends are
// committed.
func (s State) Bounds() (start, end caldate.Date, ok bool) {
	if s.start == nil || s.end == nil {
		return caldate.Date{}, caldate.Date{}, false
	}
	return *s.start, *s.end, true
}

// Start returns the committed range start, which exists while a range
// selection is still in progress.
func (s State) Start() (caldate.Date, bool) {
	if s.start == nil {
		return caldate.Date{}, false
	}
	return *s.start, true
}

// RangeInProgress reports whether a range start is committed without an
// end.
func (s State) RangeInProgress() bool {
	return s.start != nil && s.end == nil
}

// Dates returns every selected date in calendar order, whatever the
// shape of the selection.
func (s State) Dates() []caldate.Date {
	switch {
	case s.single != nil:
		return []caldate.Date{*s.single}
	case s.start != nil && s.end != nil:
		return []caldate.Date{*s.start, *s.end}
	case s.start != nil:
		return []caldate.Date{*s.start}
	default:
		out := make([]caldate.Date, len(s.many))
		copy(out, s.many)
		return out
	}
}

// Contains reports whether d is one of the selected dates (set
// membership for multiple mode, endpoint match otherwise).
func (s State) Contains(d caldate.Date) bool {
	return caldate.Contains(s.Dates(), d)
}

// Toggle returns a new multiple-mode state with d added, or removed if
// it was already selected.
func (s State) Toggle(d caldate.Date) State {
	if s.Contains(d) {
		kept := make([]caldate.Date, 0, len(s.many))
		for _, existing := range s.many {
			if !existing.Equal(d) {
				kept = append(kept, existing)
			}
		}
		return State{many: kept}
	}
	return Multiple(append(s.Dates(), d)...)
}

// Hover is the transient pointer state used while a range selection is
// in progress. It is cleared on commit or pointer leave.
type Hover struct {
	RangeEnd *caldate.Date
}

// HoverTo returns a hover state ending at d.
func HoverTo(d caldate.Date) Hover {
	return Hover{RangeEnd: &d}
}

// Clear returns the empty hover state.
func (Hover) Clear() Hover {
	return Hover{}
}
