package components

import "github.com/charmbracelet/lipgloss"

// Badge is a small inline indicator, used for event markers in the
// tooltip and the legend under the month view.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant selects the badge's semantic colour.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
	BadgeVariantInfo
)

// BadgeVariantForEvent maps an event marker type token to a variant.
// Unknown types fall back to the default.
func BadgeVariantForEvent(eventType string) BadgeVariant {
	switch eventType {
	case "primary":
		return BadgeVariantPrimary
	case "success":
		return BadgeVariantSuccess
	case "warning":
		return BadgeVariantWarning
	case "danger":
		return BadgeVariantDanger
	case "info":
		return BadgeVariantInfo
	default:
		return BadgeVariantDefault
	}
}

func (v BadgeVariant) slot() PaletteSlot {
	switch v {
	case BadgeVariantPrimary:
		return PalettePrimary
	case BadgeVariantSuccess:
		return PaletteSuccess
	case BadgeVariantWarning:
		return PaletteWarning
	case BadgeVariantDanger:
		return PaletteDanger
	case BadgeVariantInfo:
		return PaletteInfo
	default:
		return PaletteNeutral
	}
}

// NewBadge creates a badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders against the context's theme.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	cs := b.variant.slot()(ctx.Theme.Palette)
	return style.
		Background(cs.Base).
		Foreground(cs.OnBase).
		Padding(0, 1).
		Render(b.text)
}

// WithVariant sets the badge's colour variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithStyle sets the raw lipgloss style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
