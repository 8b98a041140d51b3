package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/overlay"
	"github.com/alexisbeaulieu97/almanac/internal/selection"
	almanacerrors "github.com/alexisbeaulieu97/almanac/pkg/errors"
)

const sampleConfig = `
calendar:
  first_day_of_week: monday
  rules_for_first_week: 4
  show_week_numbers: true
  theme: dark
picker:
  mode: range
  min_date: "2021-01-01"
  max_date: "2021-12-31"
  unselectable_days_of_week: [saturday, sunday]
dropdown:
  triggers: [click]
  can_close: [escape, outside]
  position: bottom-left
tooltip:
  delay_ms: 250
feeds:
  - name: team
    url: https://calendar.example.com/team.ics
events:
  - date: "2021-05-04"
    type: warning
    label: release freeze
logging:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	week := cfg.WeekConfig()
	require.Equal(t, time.Monday, week.FirstDayOfWeek)
	require.Equal(t, 4, week.FirstWeekRule)

	require.Equal(t, selection.ModeRange, cfg.Mode())

	c := cfg.Constraints()
	require.NotNil(t, c.MinDate)
	require.Equal(t, caldate.New(2021, time.January, 1), *c.MinDate)
	require.Len(t, c.UnselectableWeekdays, 2)

	require.Equal(t, []overlay.Trigger{overlay.TriggerClick}, cfg.Triggers())
	require.True(t, cfg.ClosePolicy().Escape)
	require.True(t, cfg.ClosePolicy().Outside)
	require.Equal(t, overlay.PositionBottomLeft, cfg.DropdownPosition())

	require.Equal(t, 250*time.Millisecond, cfg.TooltipDelay())

	markers := cfg.Markers()
	require.Len(t, markers, 1)
	require.Equal(t, "release freeze", markers[0].Label)

	feeds := cfg.FeedSources()
	require.Len(t, feeds, 1)
	require.Equal(t, "team", feeds[0].Name)
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.IsType(t, &almanacerrors.ParseError{}, err)
}

func TestParseConfigMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(writeConfig(t, "calendar: [unclosed"))
	require.Error(t, err)
	parseErr, ok := err.(*almanacerrors.ParseError)
	require.True(t, ok)
	require.NotEmpty(t, parseErr.Path)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad weekday", "calendar:\n  first_day_of_week: fooday\n"},
		{"bad week rule", "calendar:\n  rules_for_first_week: 3\n"},
		{"bad mode", "calendar: {}\npicker:\n  mode: plural\n"},
		{"bad date", "calendar: {}\npicker:\n  min_date: \"05/09/2021\"\n"},
		{"inverted bounds", "calendar: {}\npicker:\n  min_date: \"2021-12-31\"\n  max_date: \"2021-01-01\"\n"},
		{"bad trigger", "calendar: {}\ndropdown:\n  triggers: [dblclick]\n"},
		{"bad close token", "calendar: {}\ndropdown:\n  can_close: [sometimes]\n"},
		{"negative delay", "calendar: {}\ntooltip:\n  delay_ms: -5\n"},
		{"feed without url", "calendar: {}\nfeeds:\n  - name: team\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes([]byte(tt.content))
			require.Error(t, err)
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseBytes([]byte("calendar: {}\n"))
	require.NoError(t, err)

	week := cfg.WeekConfig()
	require.Equal(t, time.Monday, week.FirstDayOfWeek)
	require.Equal(t, 4, week.FirstWeekRule)
	require.Equal(t, selection.ModeSingle, cfg.Mode())
	require.True(t, cfg.NearbyMonthDays())
	require.Equal(t, []overlay.Trigger{overlay.TriggerClick}, cfg.Triggers())
	require.Equal(t, overlay.AllowAll(), cfg.ClosePolicy())
}
