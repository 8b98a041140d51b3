package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry of a dropdown menu. A Divider item renders a
// rule instead of a label and can never take focus.
type MenuItem struct {
	Label    string
	Value    string
	Disabled bool
	Divider  bool
}

// DropdownMenu renders the open surface of a dropdown: a bordered list
// with one highlighted item.
type DropdownMenu struct {
	BaseComponent
	items   []MenuItem
	focused int
}

// NewDropdownMenu creates a menu over the given items.
func NewDropdownMenu(items []MenuItem) *DropdownMenu {
	return &DropdownMenu{
		BaseComponent: NewBaseComponent(),
		items:         items,
	}
}

// WithFocused highlights the item at the given index.
func (d *DropdownMenu) WithFocused(index int) *DropdownMenu {
	d.focused = index
	return d
}

// Items returns the menu entries.
func (d *DropdownMenu) Items() []MenuItem {
	return d.items
}

// FocusableIndexes returns the indexes a focus trap may land on:
// dividers and disabled items are skipped.
func (d *DropdownMenu) FocusableIndexes() []int {
	indexes := make([]int, 0, len(d.items))
	for i, item := range d.items {
		if !item.Divider && !item.Disabled {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// Size reports the rendered dimensions, for placement.
func (d *DropdownMenu) Size(ctx RenderContext) (width, height int) {
	view := d.ViewWithContext(ctx)
	return lipgloss.Width(view), lipgloss.Height(view)
}

// View renders with the default theme.
func (d *DropdownMenu) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (d *DropdownMenu) ViewWithContext(ctx RenderContext) string {
	width := d.maxLabelWidth()

	lines := make([]string, 0, len(d.items))
	for i, item := range d.items {
		lines = append(lines, d.renderItem(ctx, i, item, width))
	}

	surface := ctx.Theme.Palette.Surface
	frame := d.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(ctx.Theme.Palette.Neutral.Base).
		Background(surface.Base)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (d *DropdownMenu) renderItem(ctx RenderContext, index int, item MenuItem, width int) string {
	if item.Divider {
		return NewDivider(width + 2).ViewWithContext(ctx)
	}

	style := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(ctx.Theme.Palette.Surface.OnBase)
	switch {
	case item.Disabled:
		style = style.Faint(true)
	case index == d.focused:
		cs := ctx.Theme.Palette.Primary
		style = style.Background(cs.Base).Foreground(cs.OnBase)
	}
	return style.Render(item.Label)
}

func (d *DropdownMenu) maxLabelWidth() int {
	width := 0
	for _, item := range d.items {
		if w := lipgloss.Width(item.Label); w > width {
			width = w
		}
	}
	// Room for the item padding.
	return width + 2
}
