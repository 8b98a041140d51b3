package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/calmath"
)

// CalendarRow renders one week of the month grid: an optional week
// number gutter followed by seven day cells.
type CalendarRow struct {
	BaseComponent
	week           calmath.Week
	cells          [calmath.DaysPerWeek]*DayCell
	showWeekNumber bool
}

// NewCalendarRow creates a row from a week and its classified cells.
func NewCalendarRow(week calmath.Week, cells [calmath.DaysPerWeek]*DayCell) *CalendarRow {
	return &CalendarRow{
		BaseComponent: NewBaseComponent(),
		week:          week,
		cells:         cells,
	}
}

// WithWeekNumber toggles the week number gutter.
func (r *CalendarRow) WithWeekNumber(show bool) *CalendarRow {
	r.showWeekNumber = show
	return r
}

// View renders with the default theme.
func (r *CalendarRow) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (r *CalendarRow) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, calmath.DaysPerWeek+1)
	if r.showWeekNumber {
		gutter := lipgloss.NewStyle().
			Foreground(ctx.Theme.Palette.Neutral.Base).
			Faint(true).
			Width(gutterWidth).
			Align(lipgloss.Right).
			PaddingRight(1)
		parts = append(parts, gutter.Render(fmt.Sprintf("%d", r.week.Number)))
	}
	for _, cell := range r.cells {
		parts = append(parts, renderChild(cell, ctx))
	}
	return r.ComputeStyle(ctx.Theme).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// gutterWidth fits two-digit week numbers plus a separator space.
const gutterWidth = 4
