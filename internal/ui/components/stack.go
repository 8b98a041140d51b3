package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/ui"
)

// Direction is the axis a Stack lays its children along.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis with an optional gap. Month
// views are a vertical stack of week rows; each week row is a
// horizontal stack of day cells.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders all children and joins them along the axis.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(views, strings.Repeat(" ", s.gap), lipgloss.JoinHorizontal)
	} else {
		content = s.join(views, strings.Repeat("\n", s.gap), lipgloss.JoinVertical)
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(content)
}

func (s *Stack) join(views []string, spacer string, joinFn func(lipgloss.Position, ...string) string) string {
	if s.gap == 0 {
		return joinFn(s.align.toLipglossPosition(), views...)
	}
	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return joinFn(s.align.toLipglossPosition(), spaced...)
}

// WithDirection sets the layout axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-aware style modifiers to the container.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}
