package config

import (
	"time"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/calmath"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	"github.com/alexisbeaulieu97/almanac/internal/event/icsfeed"
	"github.com/alexisbeaulieu97/almanac/internal/overlay"
	"github.com/alexisbeaulieu97/almanac/internal/selectable"
	"github.com/alexisbeaulieu97/almanac/internal/selection"
	"github.com/alexisbeaulieu97/almanac/internal/ui/components"
)

// WeekConfig resolves the calendar section into week numbering
// parameters. Unset fields default to ISO 8601.
func (c *Config) WeekConfig() calmath.WeekConfig {
	cfg := calmath.ISOWeekConfig()
	if wd, ok := parseWeekday(c.Calendar.FirstDayOfWeek); ok {
		cfg.FirstDayOfWeek = wd
	}
	if c.Calendar.RulesForFirstWeek != 0 {
		cfg.FirstWeekRule = c.Calendar.RulesForFirstWeek
	}
	return cfg
}

// Constraints resolves the picker section into a selectability policy.
// ValidateConfig has already checked the date formats, so parse errors
// here cannot occur and malformed entries are skipped defensively.
func (c *Config) Constraints() selectable.Constraints {
	var out selectable.Constraints

	if d, err := caldate.ParseDate(c.Picker.MinDate); err == nil && c.Picker.MinDate != "" {
		out.MinDate = &d
	}
	if d, err := caldate.ParseDate(c.Picker.MaxDate); err == nil && c.Picker.MaxDate != "" {
		out.MaxDate = &d
	}
	for _, s := range c.Picker.SelectableDates {
		if d, err := caldate.ParseDate(s); err == nil {
			out.SelectableDates = append(out.SelectableDates, d)
		}
	}
	for _, s := range c.Picker.UnselectableDates {
		if d, err := caldate.ParseDate(s); err == nil {
			out.UnselectableDates = append(out.UnselectableDates, d)
		}
	}
	for _, s := range c.Picker.UnselectableDaysOfWeek {
		if wd, ok := parseWeekday(s); ok {
			out.UnselectableWeekdays = append(out.UnselectableWeekdays, wd)
		}
	}
	return out
}

// Mode resolves the selection mode, defaulting to single.
func (c *Config) Mode() selection.Mode {
	if mode, ok := selection.ParseMode(c.Picker.Mode); ok {
		return mode
	}
	return selection.ModeSingle
}

// Theme resolves the named theme.
func (c *Config) Theme() components.Theme {
	if c.Calendar.Theme == "dark" {
		return components.DarkTheme()
	}
	return components.DefaultTheme()
}

// NearbyMonthDays reports whether adjacent-month days are shown.
// Showing them is the default.
func (c *Config) NearbyMonthDays() bool {
	if c.Calendar.NearbyMonthDays == nil {
		return true
	}
	return *c.Calendar.NearbyMonthDays
}

// Triggers resolves the dropdown trigger set, defaulting to click.
func (c *Config) Triggers() []overlay.Trigger {
	if len(c.Dropdown.Triggers) == 0 {
		return []overlay.Trigger{overlay.TriggerClick}
	}
	out := make([]overlay.Trigger, 0, len(c.Dropdown.Triggers))
	for _, s := range c.Dropdown.Triggers {
		if tr, ok := overlay.ParseTrigger(s); ok {
			out = append(out, tr)
		}
	}
	return out
}

// ClosePolicy resolves the dropdown dismissal policy.
func (c *Config) ClosePolicy() overlay.ClosePolicy {
	policy, ok := overlay.ParseClosePolicy(c.Dropdown.CanClose)
	if !ok {
		return overlay.AllowAll()
	}
	return policy
}

// DropdownPosition resolves the dropdown anchor position.
func (c *Config) DropdownPosition() overlay.Position {
	pos, _ := overlay.ParsePosition(c.Dropdown.Position)
	return pos
}

// TooltipDelay resolves the tooltip hover delay.
func (c *Config) TooltipDelay() time.Duration {
	return time.Duration(c.Tooltip.DelayMillis) * time.Millisecond
}

// Markers resolves the inline event declarations.
func (c *Config) Markers() []event.Marker {
	out := make([]event.Marker, 0, len(c.Events))
	for _, e := range c.Events {
		d, err := caldate.ParseDate(e.Date)
		if err != nil {
			continue
		}
		out = append(out, event.Marker{Date: d, Type: e.Type, Label: e.Label})
	}
	return out
}

// FeedSources resolves the remote calendar feeds.
func (c *Config) FeedSources() []icsfeed.Source {
	out := make([]icsfeed.Source, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		out = append(out, icsfeed.Source{Name: f.Name, URL: f.URL, Type: f.Type})
	}
	return out
}
