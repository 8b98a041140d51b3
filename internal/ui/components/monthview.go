package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/calmath"
	"github.com/alexisbeaulieu97/almanac/internal/cellstate"
)

// ClassifyFunc produces the presentation flags for one day of the grid.
type ClassifyFunc func(caldate.Date) cellstate.FlagSet

// MonthView renders a whole month: title, weekday header and one
// CalendarRow per grid week. The view is a pure function of its inputs;
// selection and focus state arrive through the classifier and the focus
// date.
type MonthView struct {
	BaseComponent
	year            int
	month           time.Month
	cfg             calmath.WeekConfig
	classify        ClassifyFunc
	focus           *caldate.Date
	showWeekNumbers bool
	showHeader      bool
}

// NewMonthView creates a view of the given month. A nil classifier
// renders every cell with no flags.
func NewMonthView(year int, month time.Month, cfg calmath.WeekConfig, classify ClassifyFunc) *MonthView {
	return &MonthView{
		BaseComponent: NewBaseComponent(),
		year:          year,
		month:         month,
		cfg:           cfg,
		classify:      classify,
		showHeader:    true,
	}
}

// WithWeekNumbers toggles the week number gutter.
func (m *MonthView) WithWeekNumbers(show bool) *MonthView {
	m.showWeekNumbers = show
	return m
}

// WithHeader toggles the month title line.
func (m *MonthView) WithHeader(show bool) *MonthView {
	m.showHeader = show
	return m
}

// WithFocus marks the cell holding keyboard focus.
func (m *MonthView) WithFocus(focus *caldate.Date) *MonthView {
	m.focus = focus
	return m
}

// View renders with the default theme.
func (m *MonthView) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (m *MonthView) ViewWithContext(ctx RenderContext) string {
	rows := make([]string, 0, 8)

	gridWidth := calmath.DaysPerWeek * CellWidth
	if m.showWeekNumbers {
		gridWidth += gutterWidth
	}

	if m.showHeader {
		title := TitleText(fmt.Sprintf("%s %d", m.month, m.year)).ViewWithContext(ctx)
		rows = append(rows, lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, title))
	}
	rows = append(rows, m.weekdayHeader(ctx))

	for _, week := range calmath.MonthGrid(m.year, m.month, m.cfg) {
		var cells [calmath.DaysPerWeek]*DayCell
		for i, day := range week.Days {
			cell := NewDayCell(day, m.classifyDay(day))
			if m.focus != nil && day.Equal(*m.focus) {
				cell = cell.WithFocused(true)
			}
			cells[i] = cell
		}
		row := NewCalendarRow(week, cells).WithWeekNumber(m.showWeekNumbers)
		rows = append(rows, row.ViewWithContext(ctx))
	}

	return m.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *MonthView) classifyDay(d caldate.Date) cellstate.FlagSet {
	if m.classify == nil {
		return 0
	}
	return m.classify(d)
}

func (m *MonthView) weekdayHeader(ctx RenderContext) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Neutral.Base).
		Width(CellWidth).
		Align(lipgloss.Center)

	parts := make([]string, 0, calmath.DaysPerWeek+1)
	if m.showWeekNumbers {
		parts = append(parts, lipgloss.NewStyle().Width(gutterWidth).Render(""))
	}
	for _, wd := range calmath.WeekdayOrder(m.cfg) {
		parts = append(parts, labelStyle.Render(wd.String()[:3]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
