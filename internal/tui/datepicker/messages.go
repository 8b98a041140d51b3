package datepicker

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/selection"
)

// SelectedMsg is emitted when the committed selection changes.
type SelectedMsg struct {
	Selection selection.State
}

// FocusChangedMsg is emitted when the keyboard focus moves to another
// day.
type FocusChangedMsg struct {
	Date caldate.Date
}

// MonthChangedMsg is emitted when the displayed month changes, whether
// by paging or by focus crossing a month boundary.
type MonthChangedMsg struct {
	Year  int
	Month time.Month
}

// RangeHoverMsg is emitted while a range selection is in progress and
// the preview endpoint moves.
type RangeHoverMsg struct {
	End caldate.Date
}
