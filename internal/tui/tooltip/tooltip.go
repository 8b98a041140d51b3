// Package tooltip hosts a small label overlay that appears next to a
// target after a hover delay and hides when the pointer leaves.
package tooltip

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/almanac/internal/overlay"
	"github.com/alexisbeaulieu97/almanac/internal/ui/components"
)

// PointerEnterMsg reports the pointer reaching the target.
type PointerEnterMsg struct{}

// PointerLeaveMsg reports the pointer leaving the target.
type PointerLeaveMsg struct{}

// confirmShowMsg completes a deferred show.
type confirmShowMsg struct {
	gen int
}

// Model drives one tooltip. The show/hide lifecycle reuses the overlay
// machine: the hover delay is the machine's deferred open, so a leave
// event arriving before the delay expires cancels the show.
type Model struct {
	machine *overlay.Machine

	target    string
	label     string
	position  overlay.Position
	multiline bool
	always    bool
	delay     time.Duration

	theme components.Theme
}

// Option configures a Model.
type Option func(*Model)

// WithDelay sets how long the pointer must rest before the tooltip
// shows.
func WithDelay(d time.Duration) Option {
	return func(m *Model) { m.delay = d }
}

// WithPosition anchors the label relative to the target.
func WithPosition(pos overlay.Position) Option {
	return func(m *Model) { m.position = pos }
}

// WithMultiline lets the label wrap.
func WithMultiline(multiline bool) Option {
	return func(m *Model) { m.multiline = multiline }
}

// WithAlways keeps the tooltip visible regardless of pointer state.
func WithAlways(always bool) Option {
	return func(m *Model) { m.always = always }
}

// WithTheme sets the rendering theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// New creates a tooltip for the given target and label.
func New(target, label string, opts ...Option) Model {
	m := Model{
		target: target,
		label:  label,
		theme:  components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.machine = overlay.NewMachine(
		overlay.WithTriggers(overlay.TriggerHover),
		overlay.WithOpenDelay(m.delay),
		overlay.WithClosePolicy(overlay.AllowAll()),
	)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Active reports whether the label is showing.
func (m Model) Active() bool {
	return m.always || m.machine.Active()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PointerEnterMsg:
		tr := m.machine.Trigger(overlay.TriggerHover)
		if tr.Schedule.Zero() {
			return m, nil
		}
		return m, m.confirmShowCmd(tr.Schedule)

	case PointerLeaveMsg:
		// Cancels a pending show as well as hiding an open label.
		m.machine.RequestClose(overlay.CloseProgrammatic)
		return m, nil

	case confirmShowMsg:
		m.machine.Confirm(msg.gen)
		return m, nil
	}
	return m, nil
}

func (m Model) confirmShowCmd(ticket overlay.Ticket) tea.Cmd {
	delay := ticket.Delay
	if delay <= 0 {
		delay = time.Millisecond
	}
	gen := ticket.Gen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return confirmShowMsg{gen: gen}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	ctx := components.RenderContext{Theme: m.theme}
	if !m.Active() {
		return m.target
	}

	label := components.NewTooltip(m.label).
		WithMultiline(m.multiline).
		ViewWithContext(ctx)

	switch m.position {
	case overlay.PositionTopLeft, overlay.PositionTopRight:
		return lipgloss.JoinVertical(lipgloss.Left, label, m.target)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, m.target, label)
	}
}
