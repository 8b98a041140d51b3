package components

import "strings"

// Divider draws a horizontal rule, used between groups in the dropdown
// menu and under the month view header.
type Divider struct {
	BaseComponent
	width int
	char  string
}

// NewDivider creates a divider of the given width.
func NewDivider(width int) *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		width:         width,
		char:          "─",
	}
}

// View renders with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if ctx.MaxWidth > 0 && width > ctx.MaxWidth {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		return ""
	}
	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Neutral.Muted)
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}
