package components

import "github.com/charmbracelet/lipgloss"

// Text renders a styled string. It is the leaf most widgets bottom out
// in.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the current text.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the raw lipgloss style.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-aware style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText renders with the theme's title preset.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(func(s TypographyScale) lipgloss.Style { return s.Title }))
}

// SubtitleText renders with the theme's subtitle preset.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(func(s TypographyScale) lipgloss.Style { return s.Subtitle }))
}

// MutedText renders faint, for weekday headers and gutters.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(func(s TypographyScale) lipgloss.Style { return s.Muted }))
}
