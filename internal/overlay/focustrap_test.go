package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFocusTrapCycles(t *testing.T) {
	t.Parallel()

	trap := NewFocusTrap(3)
	require.Equal(t, 0, trap.Index())

	require.Equal(t, 1, trap.Next())
	require.Equal(t, 2, trap.Next())
	// Wraps past the end.
	require.Equal(t, 0, trap.Next())

	// And back around the front.
	require.Equal(t, 2, trap.Prev())
}

func TestFocusTrapFocus(t *testing.T) {
	t.Parallel()

	trap := NewFocusTrap(4)
	trap.Focus(2)
	require.Equal(t, 2, trap.Index())

	trap.Focus(9)
	require.Equal(t, 2, trap.Index())
}

func TestFocusTrapEmpty(t *testing.T) {
	t.Parallel()

	trap := NewFocusTrap(0)
	require.Equal(t, -1, trap.Index())
	require.Equal(t, -1, trap.Next())
	require.Equal(t, -1, trap.Prev())
}

func TestScopeRunsCleanupsOnceInReverse(t *testing.T) {
	t.Parallel()

	var order []int
	s := NewScope()
	s.Add(func() { order = append(order, 1) })
	s.Add(func() { order = append(order, 2) })

	s.Close()
	s.Close()
	require.Equal(t, []int{2, 1}, order)

	// Adding after close runs immediately.
	ran := false
	s.Add(func() { ran = true })
	require.True(t, ran)
}
