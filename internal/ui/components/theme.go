package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/cellstate"
)

// ColourSet groups the colours that work together on one semantic slot:
// Base is the fill, OnBase the content colour that reads against it,
// Muted a desaturated variant and Contrast an accent that pops against
// Base. All colours are adaptive between light and dark terminals.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette names the semantic colour slots components draw from.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects one ColourSet from a Palette. The predefined
// slots below give type-safe access for the style modifiers.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups the border shapes themes can hand to components.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale holds the text presets components inherit from.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// VariantRegistry maps variant keys to styling strategies, letting a
// theme define component presentation as data instead of code. Day cell
// flags are the primary keys: each cellstate.Flag a cell carries looks
// up a strategy here and layers it over the base cell style.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry returns an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[interface{}]StyleStrategy)}
}

// Register maps a variant key to a strategy.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for a variant, or nil when unregistered.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling bundle. Build one once and pass it
// through RenderContext; modifications produce new themes.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Variants   *VariantRegistry
}

// DefaultTheme is the adaptive light-first theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#bfdbfe", "#1e3a8a"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#e9d5ff", "#581c87"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#bbf7d0", "#14532d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#fde68a", "#713f12"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#fecaca", "#7f1d1d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#a5f3fc", "#164e63"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#cbd5e1", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	variants := NewVariantRegistry()
	registerCellVariants(variants)

	return Theme{
		Palette:    palette,
		Borders:    borders,
		Typography: defaultTypography(palette),
		Variants:   variants,
	}
}

// DarkTheme darkens the surface slots for low-light terminals.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	theme.Variants = NewVariantRegistry()
	registerCellVariants(theme.Variants)
	return theme
}

// registerCellVariants binds each day cell flag to its presentation.
// The order cells layer these in lives in DayCell; later flags win on
// conflicting attributes, so the selection fills are registered to
// override the hover preview fills.
func registerCellVariants(registry *VariantRegistry) {
	registry.Register(cellstate.Selected, NewCompositeStrategy(
		Background(PalettePrimary),
	))
	registry.Register(cellstate.FirstSelected, NewCompositeStrategy(
		Background(PalettePrimary),
		Bold(),
	))
	registry.Register(cellstate.LastSelected, NewCompositeStrategy(
		Background(PalettePrimary),
		Bold(),
	))
	registry.Register(cellstate.WithinSelected, NewCompositeStrategy(
		MutedBackground(PalettePrimary),
	))
	registry.Register(cellstate.FirstHovered, NewCompositeStrategy(
		MutedBackground(PaletteSecondary),
	))
	registry.Register(cellstate.WithinHovered, NewCompositeStrategy(
		MutedBackground(PaletteSecondary),
	))
	registry.Register(cellstate.LastHovered, NewCompositeStrategy(
		MutedBackground(PaletteSecondary),
	))
	registry.Register(cellstate.Today, NewCompositeStrategy(
		ContrastForeground(PalettePrimary),
		Bold(),
	))
	registry.Register(cellstate.Unselectable, NewCompositeStrategy(
		Faint(),
	))
	registry.Register(cellstate.Nearby, NewCompositeStrategy(
		Faint(),
	))
	registry.Register(cellstate.HasEvents, NewCompositeStrategy(
		Underline(),
	))
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Emphasis: base.Bold(true),
		Muted:    base.Faint(true),
	}
}

// BorderVariant selects a border shape from the theme's set.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderForVariant resolves a border variant against the theme.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// Style modifiers. These close over semantic slots, so the colour is
// resolved against whichever theme the component renders with.

// Background fills with the slot's base colour and sets the matching
// content colour so text stays legible.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// MutedBackground fills with the slot's muted variant, keeping the
// surface content colour. Used for range interiors and hover previews.
func MutedBackground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Muted).Foreground(theme.Palette.Surface.OnBase)
	}
}

// Foreground sets the slot's base colour as the text colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// ContrastForeground sets the slot's accent colour as the text colour.
func ContrastForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Contrast)
	}
}

// Border applies a border shape from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour colours an already applied border with the slot's base.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Bold enables bold rendering.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Faint enables faint rendering.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

// Underline enables underlined rendering.
func Underline() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Underline(true)
	}
}

// Reverse swaps foreground and background, the focus treatment for
// keyboard-driven widgets.
func Reverse() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Reverse(true)
	}
}

// Typography inherits one of the theme's text presets.
func Typography(pick func(TypographyScale) lipgloss.Style) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(pick(theme.Typography))
	}
}
