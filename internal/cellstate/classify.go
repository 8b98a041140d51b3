package cellstate

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	"github.com/alexisbeaulieu97/almanac/internal/selectable"
	"github.com/alexisbeaulieu97/almanac/internal/selection"
)

// Input carries everything Classify needs. It is a plain value so the
// same input always classifies the same way.
type Input struct {
	Selection   selection.State
	Hover       selection.Hover
	Constraints selectable.Constraints
	// DisplayedMonth is the month the grid is currently showing.
	DisplayedMonth time.Month
	Mode           selection.Mode
	// Disabled disables the whole widget; every cell becomes
	// Unselectable regardless of constraints.
	Disabled bool
	// ShowNearbyMonth shows leading/trailing days of adjacent months.
	ShowNearbyMonth bool
	// NearbySelectable allows choosing those nearby days.
	NearbySelectable bool
	Events           []event.Marker
	// Now supplies "today" and is injectable for tests. Nil falls back
	// to time.Now.
	Now func() time.Time
}

// Classify derives the full flag set for the cell showing d. Every
// predicate is evaluated independently; flags co-occur freely except
// Selectable/Unselectable, which are mutually exclusive.
func Classify(d caldate.Date, in Input) FlagSet {
	var flags FlagSet

	flags |= selectionFlags(d, in)
	flags |= hoverFlags(d, in)

	now := in.Now
	if now == nil {
		now = time.Now
	}
	if d.Equal(caldate.FromTime(now())) {
		flags = flags.With(Today)
	}

	if isCellSelectable(d, in) {
		flags = flags.With(Selectable)
	} else {
		flags = flags.With(Unselectable)
	}

	if d.Month != in.DisplayedMonth {
		if !in.ShowNearbyMonth {
			flags = flags.With(Invisible)
		}
		if in.NearbySelectable {
			flags = flags.With(Nearby)
		}
	}

	if len(event.MarkersFor(d, in.Events)) > 0 {
		flags = flags.With(HasEvents)
	}

	return flags
}

// selectionFlags computes Selected and the range endpoint flags against
// the committed selection.
func selectionFlags(d caldate.Date, in Input) FlagSet {
	var flags FlagSet

	if in.Mode == selection.ModeMultiple {
		// Multiple mode is a plain set-membership check; the scalar
		// range matching below is suppressed.
		if in.Selection.Contains(d) {
			flags = flags.With(Selected)
		}
		return flags
	}

	if single, ok := in.Selection.Date(); ok && d.Equal(single) {
		flags = flags.With(Selected)
	}

	if start, end, ok := in.Selection.Bounds(); ok {
		first, within, last := rangePosition(d, start, end)
		if first {
			flags = flags.With(Selected).With(FirstSelected)
		}
		if last {
			flags = flags.With(Selected).With(LastSelected)
		}
		if within {
			// Strictly between the endpoints; the endpoints themselves
			// carry First/Last instead.
			flags = flags.With(Selected).With(WithinSelected)
		}
	} else if start, ok := in.Selection.Start(); ok && d.Equal(start) {
		flags = flags.With(Selected).With(FirstSelected)
	}

	return flags
}

// hoverFlags mirrors selectionFlags against the (start, hover-end) pair,
// active only while a range selection is in progress.
func hoverFlags(d caldate.Date, in Input) FlagSet {
	var flags FlagSet

	if in.Mode != selection.ModeRange || in.Hover.RangeEnd == nil {
		return flags
	}
	start, ok := in.Selection.Start()
	if !ok || !in.Selection.RangeInProgress() {
		return flags
	}

	end := *in.Hover.RangeEnd
	if end.Before(start) {
		start, end = end, start
	}

	first, within, last := rangePosition(d, start, end)
	if first {
		flags = flags.With(FirstHovered)
	}
	if within {
		flags = flags.With(WithinHovered)
	}
	if last {
		flags = flags.With(LastHovered)
	}
	return flags
}

func rangePosition(d, start, end caldate.Date) (first, within, last bool) {
	first = d.Equal(start)
	last = d.Equal(end)
	within = d.After(start) && d.Before(end)
	return first, within, last
}

func isCellSelectable(d caldate.Date, in Input) bool {
	if in.Disabled {
		return false
	}
	c := in.Constraints
	// Nearby days visible but not choosable restrict selection to the
	// displayed month.
	if in.ShowNearbyMonth && !in.NearbySelectable {
		c.RestrictToCurrentMonth = true
	}
	return selectable.IsSelectable(d, c, in.DisplayedMonth)
}
