package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/cellstate"
)

// CellWidth is the rendered width of one day cell in terminal columns.
const CellWidth = 4

// cellLayerOrder fixes the order cell flags layer their styling in.
// Later entries win on conflicting attributes: hover previews sit under
// the committed selection fills, and the today accent reads on top of
// either.
var cellLayerOrder = []cellstate.Flag{
	cellstate.FirstHovered,
	cellstate.WithinHovered,
	cellstate.LastHovered,
	cellstate.WithinSelected,
	cellstate.Selected,
	cellstate.FirstSelected,
	cellstate.LastSelected,
	cellstate.Nearby,
	cellstate.Unselectable,
	cellstate.Today,
	cellstate.HasEvents,
}

// DayCell renders one day of the month grid. Its presentation is fully
// determined by the flag set the classifier produced for it; the cell
// itself holds no calendar logic.
type DayCell struct {
	BaseComponent
	date    caldate.Date
	flags   cellstate.FlagSet
	focused bool
}

// NewDayCell creates a cell for the given day and flags.
func NewDayCell(date caldate.Date, flags cellstate.FlagSet) *DayCell {
	return &DayCell{
		BaseComponent: NewBaseComponent(),
		date:          date,
		flags:         flags,
	}
}

// WithFocused marks the cell as holding keyboard focus.
func (c *DayCell) WithFocused(focused bool) *DayCell {
	c.focused = focused
	return c
}

// Date returns the day the cell shows.
func (c *DayCell) Date() caldate.Date {
	return c.date
}

// Flags returns the cell's presentation flags.
func (c *DayCell) Flags() cellstate.FlagSet {
	return c.flags
}

// View renders with the default theme.
func (c *DayCell) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (c *DayCell) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme).
		Width(CellWidth).
		Align(lipgloss.Center)

	if c.flags.Has(cellstate.Invisible) {
		// The slot is kept so the grid stays aligned.
		return style.Render("")
	}

	for _, flag := range cellLayerOrder {
		if !c.flags.Has(flag) {
			continue
		}
		if strategy := ctx.Theme.Variants.Get(flag); strategy != nil {
			style = strategy.Apply(style, ctx.Theme)
		}
	}
	if c.focused {
		style = style.Reverse(true)
	}

	return style.Render(fmt.Sprintf("%d", c.date.Day))
}
