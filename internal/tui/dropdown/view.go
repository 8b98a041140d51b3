package dropdown

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/overlay"
	"github.com/alexisbeaulieu97/almanac/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	ctx := components.RenderContext{Theme: m.theme}

	trigger := components.NewTriggerButton(m.label).
		WithFocused(m.focused).
		WithOpen(m.machine.Active())
	if item, ok := m.Selected(); ok {
		trigger.SetLabel(item.Label)
	}
	triggerView := trigger.ViewWithContext(ctx)

	if !m.machine.Active() {
		return triggerView
	}

	menu := components.NewDropdownMenu(m.items).WithFocused(m.focusedItem())
	menuView := menu.ViewWithContext(ctx)

	// The menu hangs off the trigger per the configured position; in a
	// flow layout only the below/above distinction matters.
	switch m.position {
	case overlay.PositionTopLeft, overlay.PositionTopRight:
		return lipgloss.JoinVertical(lipgloss.Left, menuView, triggerView)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, triggerView, menuView)
	}
}

// layout reports the screen rectangles of the trigger and the open
// menu, matching the flow order View renders: menu above the trigger
// for top positions, below it otherwise, both left-aligned. The menu
// rect is zero while the overlay is closed.
func (m Model) layout() (trigger, menu overlay.Rect) {
	ctx := components.RenderContext{Theme: m.theme}
	view := components.NewTriggerButton(m.label).ViewWithContext(ctx)
	trigger = overlay.Rect{W: lipgloss.Width(view), H: lipgloss.Height(view)}

	if !m.machine.Active() {
		return trigger, overlay.Rect{}
	}

	w, h := components.NewDropdownMenu(m.items).Size(ctx)
	menu = overlay.Rect{W: w, H: h}
	switch m.position {
	case overlay.PositionTopLeft, overlay.PositionTopRight:
		trigger.Y = h
	default:
		menu.Y = trigger.H
	}
	return trigger, menu
}

func (m Model) hitTrigger(x, y int) bool {
	trigger, _ := m.layout()
	return trigger.Contains(x, y)
}

// hitItem maps a click inside the open menu to an item index. The
// menu's first row is its border, so items start one row in.
func (m Model) hitItem(x, y int) (int, bool) {
	if !m.machine.Active() {
		return 0, false
	}
	_, menu := m.layout()
	if !menu.Contains(x, y) {
		return 0, false
	}
	row := y - menu.Y - 1
	if row < 0 || row >= len(m.items) {
		return 0, false
	}
	return row, true
}
