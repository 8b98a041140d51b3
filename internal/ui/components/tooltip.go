package components

import "strings"

// Tooltip renders a small bordered label next to its target content.
type Tooltip struct {
	BaseComponent
	label     string
	multiline bool
}

// NewTooltip creates a tooltip with the given label.
func NewTooltip(label string) *Tooltip {
	return &Tooltip{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// WithMultiline allows the label to wrap instead of staying on one
// line.
func (t *Tooltip) WithMultiline(multiline bool) *Tooltip {
	t.multiline = multiline
	return t
}

// View renders with the default theme.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	label := t.label
	if !t.multiline {
		label = strings.ReplaceAll(label, "\n", " ")
	}

	cs := ctx.Theme.Palette.Neutral
	style := t.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(cs.Base).
		Background(cs.Base).
		Foreground(cs.OnBase).
		Padding(0, 1)
	if t.multiline && ctx.MaxWidth > 0 {
		style = style.Width(ctx.MaxWidth)
	}
	return style.Render(label)
}
