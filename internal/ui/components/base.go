package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/ui"
)

// StyleStrategy computes a component's final style from its base style
// and the active theme. Strategies keep styling logic composable and
// testable away from the components that use them.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware styling transformation.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies a sequence of StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// NewCompositeStrategy builds a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Apply runs every style function in registration order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// BaseComponent carries the style state every component shares. Embed
// it and call ComputeStyle at render time.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// NewBaseComponent returns a base with an empty style and strategy.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component's style against a theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw base style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions after the existing strategy,
// preserving whatever custom strategy is already in place.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}
	prior := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if prior != nil {
			base = prior.Apply(base, theme)
		}
		for _, fn := range appliers {
			base = fn(base, theme)
		}
		return base
	})
}

// RenderContext carries the theme and layout information down the
// component tree during a render. Passing it explicitly keeps rendering
// free of global state, so tests can run in parallel with different
// themes.
type RenderContext struct {
	Theme Theme
	// MaxWidth limits the rendered width; zero means unconstrained.
	MaxWidth int
}

// DefaultContext renders with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// ContextualRenderable is a component that can receive a render
// context. Components that don't need one implement only
// ui.Renderable.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild draws a child with the context when it supports it.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Alignment positions content on the cross axis of a layout.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) toLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
