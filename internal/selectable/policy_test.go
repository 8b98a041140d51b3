package selectable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

func datePtr(d caldate.Date) *caldate.Date { return &d }

func TestIsSelectableUnconstrained(t *testing.T) {
	t.Parallel()

	require.True(t, IsSelectable(caldate.New(2021, time.May, 9), Constraints{}, time.May))
}

func TestIsSelectableBounds(t *testing.T) {
	t.Parallel()

	c := Constraints{
		MinDate: datePtr(caldate.New(2021, time.May, 5)),
		MaxDate: datePtr(caldate.New(2021, time.May, 20)),
	}

	require.False(t, IsSelectable(caldate.New(2021, time.May, 4), c, time.May))
	require.True(t, IsSelectable(caldate.New(2021, time.May, 5), c, time.May))
	require.True(t, IsSelectable(caldate.New(2021, time.May, 20), c, time.May))
	require.False(t, IsSelectable(caldate.New(2021, time.May, 21), c, time.May))
}

func TestIsSelectableWeekdays(t *testing.T) {
	t.Parallel()

	c := Constraints{UnselectableWeekdays: []time.Weekday{time.Saturday, time.Sunday}}

	require.False(t, IsSelectable(caldate.New(2021, time.May, 8), c, time.May))  // Saturday
	require.False(t, IsSelectable(caldate.New(2021, time.May, 9), c, time.May))  // Sunday
	require.True(t, IsSelectable(caldate.New(2021, time.May, 10), c, time.May)) // Monday
}

func TestIsSelectableDenyList(t *testing.T) {
	t.Parallel()

	c := Constraints{UnselectableDates: []caldate.Date{caldate.New(2021, time.May, 9)}}

	require.False(t, IsSelectable(caldate.New(2021, time.May, 9), c, time.May))
	require.True(t, IsSelectable(caldate.New(2021, time.May, 10), c, time.May))
}

func TestIsSelectableCurrentMonthRestriction(t *testing.T) {
	t.Parallel()

	c := Constraints{RestrictToCurrentMonth: true}

	require.True(t, IsSelectable(caldate.New(2021, time.May, 9), c, time.May))
	// A nearby-month day visible in the May grid.
	require.False(t, IsSelectable(caldate.New(2021, time.April, 30), c, time.May))
}

func TestAllowListOverride(t *testing.T) {
	t.Parallel()

	// 2021-05-09 is a Sunday, and Sundays are denied. The allow-list
	// still wins for the exact date.
	allowed := caldate.New(2021, time.May, 9)
	c := Constraints{
		SelectableDates:      []caldate.Date{allowed},
		UnselectableWeekdays: []time.Weekday{time.Sunday},
	}

	require.True(t, IsSelectable(allowed, c, time.May))

	// Any other Sunday stays unselectable: it is denied by weekday AND
	// fails the allow-list.
	require.False(t, IsSelectable(caldate.New(2021, time.May, 16), c, time.May))
}

func TestAllowListNegativeVotes(t *testing.T) {
	t.Parallel()

	// A non-empty allow-list that never matches forces the date
	// unselectable, even when every other rule would pass.
	c := Constraints{
		SelectableDates: []caldate.Date{
			caldate.New(2021, time.May, 1),
			caldate.New(2021, time.May, 2),
		},
	}

	require.False(t, IsSelectable(caldate.New(2021, time.May, 9), c, time.May))
	require.True(t, IsSelectable(caldate.New(2021, time.May, 2), c, time.May))
}

func TestAllowListOverridesDenyList(t *testing.T) {
	t.Parallel()

	// A date both allowed and denied: the allow-list match returns
	// before the deny vote is tallied, so the date stays selectable.
	d := caldate.New(2021, time.May, 9)
	c := Constraints{
		SelectableDates:   []caldate.Date{d},
		UnselectableDates: []caldate.Date{d},
	}

	require.True(t, IsSelectable(d, c, time.May))
}

func TestAllowListOverridesBounds(t *testing.T) {
	t.Parallel()

	// The allow-list short-circuits before the recorded bound votes are
	// tallied, so a match outside [min, max] is still selectable.
	allowed := caldate.New(2021, time.June, 1)
	c := Constraints{
		MaxDate:         datePtr(caldate.New(2021, time.May, 31)),
		SelectableDates: []caldate.Date{allowed},
	}

	require.True(t, IsSelectable(allowed, c, time.June))
}

func TestIsSelectableIsPure(t *testing.T) {
	t.Parallel()

	c := Constraints{
		MinDate:              datePtr(caldate.New(2021, time.May, 1)),
		UnselectableWeekdays: []time.Weekday{time.Wednesday},
	}
	d := caldate.New(2021, time.May, 10)

	first := IsSelectable(d, c, time.May)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, IsSelectable(d, c, time.May))
	}
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	c := Constraints{
		MinDate: datePtr(caldate.New(2021, time.May, 5)),
		MaxDate: datePtr(caldate.New(2021, time.May, 20)),
	}

	require.True(t, InBounds(caldate.New(2021, time.May, 5), c))
	require.False(t, InBounds(caldate.New(2021, time.May, 4), c))
	require.False(t, InBounds(caldate.New(2021, time.May, 21), c))
	require.True(t, InBounds(caldate.New(2021, time.May, 21), Constraints{}))
}

func TestConstraintsValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts well-formed constraints", func(t *testing.T) {
		t.Parallel()
		c := Constraints{
			MinDate: datePtr(caldate.New(2021, time.May, 1)),
			MaxDate: datePtr(caldate.New(2021, time.May, 31)),
		}
		require.NoError(t, c.Validate())
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		t.Parallel()
		c := Constraints{
			MinDate: datePtr(caldate.New(2021, time.May, 31)),
			MaxDate: datePtr(caldate.New(2021, time.May, 1)),
		}
		require.Error(t, c.Validate())
	})

	t.Run("rejects out-of-range weekday", func(t *testing.T) {
		t.Parallel()
		c := Constraints{UnselectableWeekdays: []time.Weekday{time.Weekday(9)}}
		require.Error(t, c.Validate())
	})
}
