package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// confirm drives the host side of a transition: schedule the ticket and
// fire it immediately.
func confirm(t *testing.T, m *Machine, tr Transition) {
	t.Helper()
	require.False(t, tr.Schedule.Zero())
	res := m.Confirm(tr.Schedule.Gen)
	require.True(t, res.Changed)
	require.Equal(t, Open, res.Phase)
}

func TestClickTriggerOpensThenDismisses(t *testing.T) {
	t.Parallel()

	m := NewMachine(WithTriggers(TriggerClick))

	// Click opens via the deferred two-phase open.
	tr := m.Trigger(TriggerClick)
	require.True(t, tr.Changed)
	require.Equal(t, PendingOpen, tr.Phase)
	confirm(t, m, tr)
	require.True(t, m.Active())

	// An outside click closes it.
	res := m.RequestClose(CloseOutside)
	require.True(t, res.Changed)
	require.Equal(t, Idle, m.Phase())

	// Reopen, then Escape closes it too.
	confirm(t, m, m.Trigger(TriggerClick))
	require.True(t, m.Active())
	res = m.RequestClose(CloseEscape)
	require.True(t, res.Changed)
	require.False(t, m.Active())
}

func TestOutsideClickDuringPendingOpenIsSwallowed(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	tr := m.Trigger(TriggerClick)
	require.Equal(t, PendingOpen, m.Phase())

	// The opening interaction reaching the outside-dismiss handler must
	// not cancel the open.
	res := m.RequestClose(CloseOutside)
	require.False(t, res.Changed)
	require.Equal(t, PendingOpen, m.Phase())

	confirm(t, m, tr)
	require.True(t, m.Active())
}

func TestCloseCancelsPendingTimer(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	tr := m.Trigger(TriggerClick)

	res := m.RequestClose(CloseProgrammatic)
	require.True(t, res.Changed)
	require.Equal(t, Idle, m.Phase())

	// The stale timer firing afterwards must not reopen.
	late := m.Confirm(tr.Schedule.Gen)
	require.False(t, late.Changed)
	require.Equal(t, Idle, m.Phase())
}

func TestRapidToggleCancelsPendingOpen(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	first := m.Trigger(TriggerClick)
	require.Equal(t, PendingOpen, m.Phase())

	// Second click before the timer fires toggles the open off.
	second := m.Trigger(TriggerClick)
	require.True(t, second.Changed)
	require.Equal(t, Idle, m.Phase())
	require.True(t, second.Schedule.Zero())

	require.False(t, m.Confirm(first.Schedule.Gen).Changed)

	// A third click starts a fresh open with a fresh generation.
	third := m.Trigger(TriggerClick)
	require.NotEqual(t, first.Schedule.Gen, third.Schedule.Gen)
	confirm(t, m, third)
	require.True(t, m.Active())
}

func TestToggleCloseWhileOpen(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	confirm(t, m, m.Trigger(TriggerClick))

	res := m.Trigger(TriggerClick)
	require.True(t, res.Changed)
	require.False(t, m.Active())
}

func TestUnconfiguredTriggerIsIgnored(t *testing.T) {
	t.Parallel()

	m := NewMachine(WithTriggers(TriggerClick))
	res := m.Trigger(TriggerHover)
	require.False(t, res.Changed)
	require.Equal(t, Idle, m.Phase())
}

func TestClosePolicyFiltersReasons(t *testing.T) {
	t.Parallel()

	m := NewMachine(WithClosePolicy(ClosePolicy{Toggle: true, Escape: true}))
	confirm(t, m, m.Trigger(TriggerClick))

	// Outside clicks are not honored by this policy.
	require.False(t, m.RequestClose(CloseOutside).Changed)
	require.True(t, m.Active())

	// Programmatic closes always work.
	require.True(t, m.RequestClose(CloseProgrammatic).Changed)
	require.False(t, m.Active())
}

func TestParseClosePolicy(t *testing.T) {
	t.Parallel()

	p, ok := ParseClosePolicy(nil)
	require.True(t, ok)
	require.Equal(t, AllowAll(), p)

	p, ok = ParseClosePolicy([]string{"escape"})
	require.True(t, ok)
	require.True(t, p.Escape)
	require.False(t, p.Outside)

	_, ok = ParseClosePolicy([]string{"bogus"})
	require.False(t, ok)
}

func TestParseTrigger(t *testing.T) {
	t.Parallel()

	tr, ok := ParseTrigger("hover")
	require.True(t, ok)
	require.Equal(t, TriggerHover, tr)

	_, ok = ParseTrigger("dblclick")
	require.False(t, ok)
}
