package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/calmath"
	"github.com/alexisbeaulieu97/almanac/internal/cellstate"
)

func TestMonthViewRendersMonth(t *testing.T) {
	t.Parallel()

	view := NewMonthView(2021, time.May, calmath.ISOWeekConfig(), nil)
	out := view.ViewWithContext(DefaultContext())

	require.Contains(t, out, "May 2021")
	require.Contains(t, out, "Mon")
	require.Contains(t, out, "Sun")
	require.Contains(t, out, "31")
}

func TestMonthViewWeekNumbers(t *testing.T) {
	t.Parallel()

	view := NewMonthView(2021, time.May, calmath.ISOWeekConfig(), nil).
		WithWeekNumbers(true)
	out := view.ViewWithContext(DefaultContext())

	// May 2021 spans ISO weeks 17 through 22.
	require.Contains(t, out, "17")
	require.Contains(t, out, "22")
}

func TestMonthViewClassifierDrivesCells(t *testing.T) {
	t.Parallel()

	classify := func(d caldate.Date) cellstate.FlagSet {
		var flags cellstate.FlagSet
		if d.Month != time.May {
			flags = flags.With(cellstate.Invisible)
		}
		return flags
	}

	view := NewMonthView(2021, time.May, calmath.ISOWeekConfig(), classify).
		WithHeader(false)
	out := stripANSI(view.ViewWithContext(DefaultContext()))

	// The first grid row covers Apr 26 through May 2; the April days are
	// blanked while May 1 and 2 remain.
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 2)
	firstRow := lines[1]
	require.NotContains(t, firstRow, "26")
	require.Contains(t, firstRow, "1")
	require.Contains(t, firstRow, "2")
}

func TestDropdownMenuRendersItems(t *testing.T) {
	t.Parallel()

	menu := NewDropdownMenu([]MenuItem{
		{Label: "This month", Value: "month"},
		{Divider: true},
		{Label: "This week", Value: "week"},
		{Label: "Locked", Disabled: true},
	}).WithFocused(0)

	out := menu.ViewWithContext(DefaultContext())
	require.Contains(t, out, "This month")
	require.Contains(t, out, "This week")
	require.Contains(t, out, "Locked")

	require.Equal(t, []int{0, 2}, menu.FocusableIndexes())

	w, h := menu.Size(DefaultContext())
	require.Greater(t, w, 0)
	require.Greater(t, h, 0)
}

func TestTooltipFlattensSingleLine(t *testing.T) {
	t.Parallel()

	tip := NewTooltip("two\nlines")
	out := tip.ViewWithContext(DefaultContext())
	require.Contains(t, out, "two lines")
}
