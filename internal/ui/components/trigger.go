package components

// TriggerButton is the clickable control a dropdown hangs from. It
// renders its label with a focus treatment when focused and an open
// treatment while the overlay is showing.
type TriggerButton struct {
	BaseComponent
	label   string
	focused bool
	open    bool
}

// NewTriggerButton creates a trigger with the given label.
func NewTriggerButton(label string) *TriggerButton {
	return &TriggerButton{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders with the default theme.
func (t *TriggerButton) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (t *TriggerButton) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme).Padding(0, 1)

	cs := ctx.Theme.Palette.Surface
	style = style.Background(cs.Muted).Foreground(cs.OnBase)
	if t.open {
		primary := ctx.Theme.Palette.Primary
		style = style.Background(primary.Base).Foreground(primary.OnBase)
	}
	if t.focused {
		style = style.Bold(true).Underline(true)
	}

	marker := " ▾"
	if t.open {
		marker = " ▴"
	}
	return style.Render(t.label + marker)
}

// WithFocused marks the trigger as keyboard-focused.
func (t *TriggerButton) WithFocused(focused bool) *TriggerButton {
	t.focused = focused
	return t
}

// WithOpen marks the overlay as showing.
func (t *TriggerButton) WithOpen(open bool) *TriggerButton {
	t.open = open
	return t
}

// SetLabel replaces the label.
func (t *TriggerButton) SetLabel(label string) *TriggerButton {
	t.label = label
	return t
}

// Label returns the current label.
func (t *TriggerButton) Label() string {
	return t.label
}
