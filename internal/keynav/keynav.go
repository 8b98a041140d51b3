// Package keynav turns directional key input into focus movement across
// the calendar grid. It is a pure computation: the host applies the
// reported focus target, keynav itself never touches selection state.
package keynav

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/selectable"
)

// Key is the normalized key input the navigator understands.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyTab
)

// Action tells the host what to do with the key.
type Action int

const (
	// ActionNone swallows the key: it is consumed but nothing happens.
	ActionNone Action = iota
	// ActionCommit asks the host to select the focused date, subject to
	// the selectability policy.
	ActionCommit
	// ActionMove carries a new focus target in Result.Target.
	ActionMove
	// ActionPassthrough leaves the key to default handling (Tab keeps
	// its focus-traversal meaning).
	ActionPassthrough
)

// Result is the outcome of handling one key press.
type Result struct {
	Action Action
	// Target is the new focus target for ActionMove. It doubles as the
	// hover-range endpoint while a range selection is in progress.
	Target caldate.Date
}

// deltas maps directional keys to day increments: horizontal arrows
// step a day, vertical arrows step a grid row.
var deltas = map[Key]int{
	KeyLeft:  -1,
	KeyRight: 1,
	KeyUp:    -7,
	KeyDown:  7,
}

// Handle interprets one key press against the focused date.
func Handle(key Key, focus caldate.Date, c selectable.Constraints, displayedMonth time.Month) Result {
	switch key {
	case KeyEnter, KeySpace:
		return Result{Action: ActionCommit, Target: focus}
	case KeyTab:
		return Result{Action: ActionPassthrough}
	case KeyLeft, KeyRight, KeyUp, KeyDown:
		return Result{Action: ActionMove, Target: Step(focus, deltas[key], c, displayedMonth)}
	default:
		return Result{Action: ActionNone}
	}
}

// Step moves the focus by delta days, then scans one day at a time in
// the same direction past unselectable dates. The scan runs while the
// candidate is strictly inside the (minDate, maxDate) window; once a
// bound is reached the last candidate evaluated is returned as-is, even
// when it is unselectable. Callers depend on stopping at the bound
// rather than refusing to move, so keep that behavior.
func Step(focus caldate.Date, delta int, c selectable.Constraints, displayedMonth time.Month) caldate.Date {
	if delta == 0 {
		return focus
	}

	direction := 1
	if delta < 0 {
		direction = -1
	}

	// With no bounds set, a constraint set that rejects every date
	// (e.g. an allow-list that never matches) would scan forever; the
	// cap stops the scan after four years' worth of days.
	const scanCap = 4 * 366

	candidate := focus.AddDays(delta)
	for i := 0; i < scanCap && strictlyInside(candidate, c) && !selectable.IsSelectable(candidate, c, displayedMonth); i++ {
		candidate = candidate.AddDays(direction)
	}
	return candidate
}

// strictlyInside reports whether d lies strictly between the bounds.
// The scan deliberately uses strict comparisons so it terminates on the
// bound itself.
func strictlyInside(d caldate.Date, c selectable.Constraints) bool {
	if c.MinDate != nil && !d.After(*c.MinDate) {
		return false
	}
	if c.MaxDate != nil && !d.Before(*c.MaxDate) {
		return false
	}
	return true
}
