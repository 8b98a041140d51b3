package dropdown

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/almanac/internal/overlay"
	"github.com/alexisbeaulieu97/almanac/internal/ui/components"
)

// Model is a dropdown control: a trigger button that opens a menu
// overlay. The open/close lifecycle lives in the overlay machine; the
// model translates terminal events into machine inputs and renders the
// result.
type Model struct {
	machine *overlay.Machine
	trap    *overlay.FocusTrap
	scope   *overlay.Scope

	label    string
	items    []components.MenuItem
	selected int
	// focusable maps trap positions to item indexes.
	focusable []int

	position overlay.Position
	theme    components.Theme
	focused  bool
	done     bool

	triggers []overlay.Trigger
	policy   overlay.ClosePolicy
}

// Option configures a Model.
type Option func(*Model)

// WithTriggers sets which events open the dropdown.
func WithTriggers(triggers ...overlay.Trigger) Option {
	return func(m *Model) { m.triggers = triggers }
}

// WithClosePolicy restricts which dismissals close the dropdown.
func WithClosePolicy(p overlay.ClosePolicy) Option {
	return func(m *Model) { m.policy = p }
}

// WithPosition anchors the open menu relative to the trigger.
func WithPosition(pos overlay.Position) Option {
	return func(m *Model) { m.position = pos }
}

// WithTheme sets the rendering theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// New creates a dropdown over the given items.
func New(label string, items []components.MenuItem, opts ...Option) Model {
	m := Model{
		scope:    overlay.NewScope(),
		label:    label,
		items:    items,
		selected: -1,
		theme:    components.DefaultTheme(),
		focused:  true,
		triggers: []overlay.Trigger{overlay.TriggerClick},
		policy:   overlay.AllowAll(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.machine = overlay.NewMachine(
		overlay.WithTriggers(m.triggers...),
		overlay.WithClosePolicy(m.policy),
	)

	menu := components.NewDropdownMenu(items)
	m.focusable = menu.FocusableIndexes()
	m.trap = overlay.NewFocusTrap(len(m.focusable))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Active reports whether the menu is showing.
func (m Model) Active() bool {
	return m.machine.Active()
}

// Selected returns the chosen item, if any.
func (m Model) Selected() (components.MenuItem, bool) {
	if m.selected < 0 || m.selected >= len(m.items) {
		return components.MenuItem{}, false
	}
	return m.items[m.selected], true
}

// Done reports whether the user quit.
func (m Model) Done() bool {
	return m.done
}

// focusedItem returns the item index the trap currently points at.
func (m Model) focusedItem() int {
	idx := m.trap.Index()
	if idx < 0 || idx >= len(m.focusable) {
		return -1
	}
	return m.focusable[idx]
}
