package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/calmath"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	"github.com/alexisbeaulieu97/almanac/internal/selectable"
	"github.com/alexisbeaulieu97/almanac/internal/selection"
	"github.com/alexisbeaulieu97/almanac/internal/ui/components"
)

// Model is the interactive date picker. It owns the committed
// selection, the keyboard focus and the displayed month; rendering is
// delegated to the components package.
type Model struct {
	mode        selection.Mode
	sel         selection.State
	hover       selection.Hover
	constraints selectable.Constraints
	cfg         calmath.WeekConfig

	year  int
	month time.Month
	focus caldate.Date

	events           []event.Marker
	showNearby       bool
	nearbySelectable bool
	showWeekNumbers  bool
	disabled         bool

	theme components.Theme
	keys  keyMap
	help  help.Model

	// now is injectable for tests.
	now func() time.Time

	width int
	done  bool
}

// keyMap binds the picker's keys for both dispatch and the help view.
type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous day")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next day")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous week")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next week")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup", "previous month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.PrevMonth, k.NextMonth, k.Today},
		{k.Help, k.Quit},
	}
}

// Option configures a Model.
type Option func(*Model)

// WithMode sets the selection mode.
func WithMode(mode selection.Mode) Option {
	return func(m *Model) { m.mode = mode }
}

// WithConstraints sets the selectability constraints.
func WithConstraints(c selectable.Constraints) Option {
	return func(m *Model) { m.constraints = c }
}

// WithWeekConfig sets the week numbering configuration.
func WithWeekConfig(cfg calmath.WeekConfig) Option {
	return func(m *Model) { m.cfg = cfg }
}

// WithEvents attaches event markers.
func WithEvents(events []event.Marker) Option {
	return func(m *Model) { m.events = events }
}

// WithNearbyMonthDays shows adjacent-month days and optionally makes
// them selectable.
func WithNearbyMonthDays(show, selectableNearby bool) Option {
	return func(m *Model) {
		m.showNearby = show
		m.nearbySelectable = selectableNearby
	}
}

// WithWeekNumbers shows the week number gutter.
func WithWeekNumbers(show bool) Option {
	return func(m *Model) { m.showWeekNumbers = show }
}

// WithTheme sets the rendering theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// WithDisabled disables all interaction.
func WithDisabled(disabled bool) Option {
	return func(m *Model) { m.disabled = disabled }
}

// WithInitialSelection seeds the committed selection.
func WithInitialSelection(sel selection.State) Option {
	return func(m *Model) { m.sel = sel }
}

// withNow overrides the clock in tests.
func withNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// New creates a picker focused on today.
func New(opts ...Option) Model {
	m := Model{
		cfg:   calmath.ISOWeekConfig(),
		theme: components.DefaultTheme(),
		keys:  defaultKeyMap(),
		help:  help.New(),
		now:   time.Now,
		width: 80,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.focus = caldate.FromTime(m.now())
	m.year, m.month = m.focus.Year, m.focus.Month
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the committed selection.
func (m Model) Selection() selection.State {
	return m.sel
}

// Focus returns the keyboard focus.
func (m Model) Focus() caldate.Date {
	return m.focus
}

// Displayed returns the displayed month.
func (m Model) Displayed() (int, time.Month) {
	return m.year, m.month
}

// Done reports whether the user quit the picker.
func (m Model) Done() bool {
	return m.done
}
