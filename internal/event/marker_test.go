package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

func TestMarkerMatchesByWeekdayOnly(t *testing.T) {
	t.Parallel()

	// 2021-05-04 is a Tuesday.
	marker := Marker{Date: caldate.New(2021, time.May, 4), Type: "meeting"}

	// The marker attaches to its own date...
	require.True(t, marker.MatchesDay(caldate.New(2021, time.May, 4)))
	// ...and to every other Tuesday in the visible grid.
	require.True(t, marker.MatchesDay(caldate.New(2021, time.May, 11)))
	require.True(t, marker.MatchesDay(caldate.New(2021, time.May, 18)))
	require.True(t, marker.MatchesDay(caldate.New(2021, time.May, 25)))
	// ...but not to other weekdays.
	require.False(t, marker.MatchesDay(caldate.New(2021, time.May, 5)))
}

func TestMarkersFor(t *testing.T) {
	t.Parallel()

	markers := []Marker{
		{Date: caldate.New(2021, time.May, 4), Type: "meeting"},  // Tuesday
		{Date: caldate.New(2021, time.May, 11), Type: "standup"}, // Tuesday
		{Date: caldate.New(2021, time.May, 5), Type: "review"},   // Wednesday
	}

	tuesday := MarkersFor(caldate.New(2021, time.May, 18), markers)
	require.Len(t, tuesday, 2)
	require.Equal(t, "meeting", tuesday[0].Type)
	require.Equal(t, "standup", tuesday[1].Type)

	monday := MarkersFor(caldate.New(2021, time.May, 17), markers)
	require.Empty(t, monday)
}
