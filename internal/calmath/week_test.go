package calmath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

func TestWeekNumberISO(t *testing.T) {
	t.Parallel()

	cfg := ISOWeekConfig()

	tests := []struct {
		name string
		date caldate.Date
		week int
		year int
	}{
		// 2021-01-01 is a Friday and belongs to the last week of 2020.
		{"new year belongs to previous year", caldate.New(2021, time.January, 1), 53, 2020},
		{"first monday of 2021", caldate.New(2021, time.January, 4), 1, 2021},
		{"mid year", caldate.New(2021, time.July, 1), 26, 2021},
		// 2019-12-30 is a Monday and starts week 1 of 2020.
		{"december belongs to next year", caldate.New(2019, time.December, 30), 1, 2020},
		{"leap week year end", caldate.New(2020, time.December, 31), 53, 2020},
		{"ordinary year end", caldate.New(2019, time.December, 29), 52, 2019},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			week, year := WeekYear(tt.date, cfg)
			require.Equal(t, tt.week, week)
			require.Equal(t, tt.year, year)
			require.Equal(t, tt.week, WeekNumber(tt.date, cfg))
		})
	}
}

func TestWeekNumberSundayRuleOne(t *testing.T) {
	t.Parallel()

	cfg := WeekConfig{FirstDayOfWeek: time.Sunday, FirstWeekRule: 1}

	// 2021-01-01 is a Friday; under Sunday-start rule-1 weeks it still
	// belongs to the last week of 2020, which has only 52 weeks under
	// this configuration.
	week, year := WeekYear(caldate.New(2021, time.January, 1), cfg)
	require.Equal(t, 52, week)
	require.Equal(t, 2020, year)

	// The first Sunday of 2021 starts week 1.
	week, year = WeekYear(caldate.New(2021, time.January, 3), cfg)
	require.Equal(t, 1, week)
	require.Equal(t, 2021, year)
}

func TestWeekNumberOfJanuaryFirstDependsOnlyOnConfig(t *testing.T) {
	t.Parallel()

	jan1 := caldate.New(2021, time.January, 1)
	iso := WeekNumber(jan1, ISOWeekConfig())

	// Same date, same config: always the same answer.
	require.Equal(t, iso, WeekNumber(jan1, ISOWeekConfig()))

	// A different week rule changes the numbering.
	other := WeekNumber(jan1, WeekConfig{FirstDayOfWeek: time.Sunday, FirstWeekRule: 1})
	require.NotEqual(t, iso, other)
}

func TestWeeksInYearIsAlways52Or53(t *testing.T) {
	t.Parallel()

	configs := []WeekConfig{
		ISOWeekConfig(),
		{FirstDayOfWeek: time.Sunday, FirstWeekRule: 1},
		{FirstDayOfWeek: time.Saturday, FirstWeekRule: 1},
		{FirstDayOfWeek: time.Wednesday, FirstWeekRule: 4},
	}

	for _, cfg := range configs {
		for year := 1900; year <= 2100; year++ {
			weeks := WeeksInYear(year, cfg)
			require.True(t, weeks == 52 || weeks == 53,
				"year %d cfg %+v got %d", year, cfg, weeks)
		}
	}
}

func TestWeekNumberStaysInRange(t *testing.T) {
	t.Parallel()

	cfg := ISOWeekConfig()
	d := caldate.New(2019, time.January, 1)
	for i := 0; i < 365*4; i++ {
		week := WeekNumber(d, cfg)
		require.GreaterOrEqual(t, week, 1, "date %s", d)
		require.LessOrEqual(t, week, 53, "date %s", d)
		d = d.AddDays(1)
	}
}

func TestLeapYears(t *testing.T) {
	t.Parallel()

	require.True(t, IsLeapYear(2020))
	require.True(t, IsLeapYear(2000))
	require.False(t, IsLeapYear(1900))
	require.False(t, IsLeapYear(2021))
	require.Equal(t, 366, DaysInYear(2020))
	require.Equal(t, 365, DaysInYear(2021))
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	require.Equal(t, 29, DaysInMonth(2020, time.February))
	require.Equal(t, 28, DaysInMonth(2021, time.February))
	require.Equal(t, 31, DaysInMonth(2021, time.January))
	require.Equal(t, 30, DaysInMonth(2021, time.April))
}
