package datepicker

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	"github.com/alexisbeaulieu97/almanac/internal/selectable"
	"github.com/alexisbeaulieu97/almanac/internal/selection"
)

func fixedClock(d caldate.Date) func() time.Time {
	return func() time.Time { return d.Time() }
}

func newTestModel(opts ...Option) Model {
	opts = append([]Option{withNow(fixedClock(caldate.New(2021, time.May, 12)))}, opts...)
	return New(opts...)
}

// drain collects the messages a command produces, flattening batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func press(m Model, keyType tea.KeyType) (Model, []tea.Msg) {
	updated, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model), drain(cmd)
}

func TestArrowKeysMoveFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	require.Equal(t, caldate.New(2021, time.May, 12), m.Focus())

	m, msgs := press(m, tea.KeyRight)
	require.Equal(t, caldate.New(2021, time.May, 13), m.Focus())
	require.Contains(t, msgs, FocusChangedMsg{Date: caldate.New(2021, time.May, 13)})

	m, _ = press(m, tea.KeyDown)
	require.Equal(t, caldate.New(2021, time.May, 20), m.Focus())

	m, _ = press(m, tea.KeyLeft)
	require.Equal(t, caldate.New(2021, time.May, 19), m.Focus())

	m, _ = press(m, tea.KeyUp)
	require.Equal(t, caldate.New(2021, time.May, 12), m.Focus())
}

func TestFocusFollowsAcrossMonthBoundary(t *testing.T) {
	t.Parallel()

	m := newTestModel(withNow(fixedClock(caldate.New(2021, time.May, 31))))

	m, msgs := press(m, tea.KeyRight)
	require.Equal(t, caldate.New(2021, time.June, 1), m.Focus())

	year, month := m.Displayed()
	require.Equal(t, 2021, year)
	require.Equal(t, time.June, month)
	require.Contains(t, msgs, MonthChangedMsg{Year: 2021, Month: time.June})
}

func TestEnterCommitsSingleSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m, msgs := press(m, tea.KeyEnter)

	d, ok := m.Selection().Date()
	require.True(t, ok)
	require.Equal(t, caldate.New(2021, time.May, 12), d)
	require.Contains(t, msgs, SelectedMsg{Selection: m.Selection()})
}

func TestEnterOnUnselectableDayIsSwallowed(t *testing.T) {
	t.Parallel()

	m := newTestModel(WithConstraints(selectable.Constraints{
		UnselectableDates: []caldate.Date{caldate.New(2021, time.May, 12)},
	}))

	m, msgs := press(m, tea.KeyEnter)
	require.True(t, m.Selection().IsEmpty())
	require.Empty(t, msgs)
}

func TestRangeSelectionLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(WithMode(selection.ModeRange))

	// First Enter anchors the range.
	m, _ = press(m, tea.KeyEnter)
	require.True(t, m.Selection().RangeInProgress())

	// Moving focus previews the hover endpoint.
	m, msgs := press(m, tea.KeyRight)
	require.Contains(t, msgs, RangeHoverMsg{End: caldate.New(2021, time.May, 13)})

	// Second Enter commits the pair.
	m, _ = press(m, tea.KeyEnter)
	start, end, ok := m.Selection().Bounds()
	require.True(t, ok)
	require.Equal(t, caldate.New(2021, time.May, 12), start)
	require.Equal(t, caldate.New(2021, time.May, 13), end)
}

func TestMultipleModeToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(WithMode(selection.ModeMultiple))

	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyRight)
	m, _ = press(m, tea.KeyEnter)
	require.Len(t, m.Selection().Dates(), 2)

	// Toggling an already selected day removes it.
	m, _ = press(m, tea.KeyEnter)
	require.Len(t, m.Selection().Dates(), 1)
}

func TestMonthPagingClampsFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel(withNow(fixedClock(caldate.New(2021, time.March, 31))))

	m, msgs := press(m, tea.KeyPgDown)
	year, month := m.Displayed()
	require.Equal(t, time.April, month)
	require.Equal(t, 2021, year)
	// April has 30 days; focus clamps to the last one.
	require.Equal(t, caldate.New(2021, time.April, 30), m.Focus())
	require.Contains(t, msgs, MonthChangedMsg{Year: 2021, Month: time.April})
}

func TestDisabledPickerIgnoresInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(WithDisabled(true))
	m, msgs := press(m, tea.KeyEnter)
	require.True(t, m.Selection().IsEmpty())
	require.Empty(t, msgs)

	m, _ = press(m, tea.KeyRight)
	require.Equal(t, caldate.New(2021, time.May, 12), m.Focus())
}

func TestViewRendersSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(WithInitialSelection(selection.Single(caldate.New(2021, time.May, 9))))
	out := m.View()
	require.Contains(t, out, "May 2021")
	require.Contains(t, out, "2021-05-09")
}

func TestViewShowsBadgesForFocusedDayEvents(t *testing.T) {
	t.Parallel()

	m := newTestModel(WithEvents([]event.Marker{
		{Date: caldate.New(2021, time.May, 12), Type: "warning", Label: "standup"},
	}))
	require.Contains(t, m.View(), "standup")
}
