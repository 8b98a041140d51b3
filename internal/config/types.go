// Package config loads, validates and resolves the calendar
// configuration file.
package config

// Config is the root of the YAML configuration.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	Picker   PickerConfig   `yaml:"picker"`
	Dropdown DropdownConfig `yaml:"dropdown"`
	Tooltip  TooltipConfig  `yaml:"tooltip"`
	Feeds    []FeedConfig   `yaml:"feeds" validate:"dive"`
	Events   []EventConfig  `yaml:"events" validate:"dive"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CalendarConfig controls week numbering and grid presentation.
type CalendarConfig struct {
	// FirstDayOfWeek is a weekday name; Sunday is 0 in numeric form.
	FirstDayOfWeek string `yaml:"first_day_of_week" validate:"omitempty,weekday"`
	// RulesForFirstWeek selects the first-week rule: 4 is ISO 8601,
	// 1 means the week containing January 1st.
	RulesForFirstWeek int    `yaml:"rules_for_first_week" validate:"omitempty,weekrule"`
	ShowWeekNumbers   bool   `yaml:"show_week_numbers"`
	NearbyMonthDays   *bool  `yaml:"nearby_month_days"`
	NearbySelectable  bool   `yaml:"nearby_selectable_dates"`
	Theme             string `yaml:"theme" validate:"omitempty,oneof=default dark"`
}

// PickerConfig controls selection behavior and constraints.
type PickerConfig struct {
	Mode              string   `yaml:"mode" validate:"omitempty,oneof=single range multiple"`
	MinDate           string   `yaml:"min_date" validate:"omitempty,isodate"`
	MaxDate           string   `yaml:"max_date" validate:"omitempty,isodate"`
	SelectableDates   []string `yaml:"selectable_dates" validate:"dive,isodate"`
	UnselectableDates []string `yaml:"unselectable_dates" validate:"dive,isodate"`
	// UnselectableDaysOfWeek holds weekday names or numbers.
	UnselectableDaysOfWeek []string `yaml:"unselectable_days_of_week" validate:"dive,weekday"`
}

// DropdownConfig controls overlay behavior for dropdown widgets.
type DropdownConfig struct {
	Triggers []string `yaml:"triggers" validate:"dive,oneof=click hover focus contextmenu"`
	// CanClose lists the honored dismissals; empty means all.
	CanClose []string `yaml:"can_close" validate:"dive,oneof=escape outside"`
	Position string   `yaml:"position" validate:"omitempty,oneof=bottom-right bottom-left top-right top-left"`
}

// TooltipConfig controls tooltip behavior.
type TooltipConfig struct {
	DelayMillis int    `yaml:"delay_ms" validate:"gte=0"`
	Position    string `yaml:"position" validate:"omitempty,oneof=bottom-right bottom-left top-right top-left"`
	Multiline   bool   `yaml:"multiline"`
}

// FeedConfig points at a remote ICS calendar.
type FeedConfig struct {
	Name string `yaml:"name" validate:"required"`
	URL  string `yaml:"url" validate:"required,url"`
	Type string `yaml:"type"`
}

// EventConfig is a static event marker declared inline.
type EventConfig struct {
	Date  string `yaml:"date" validate:"required,isodate"`
	Type  string `yaml:"type"`
	Label string `yaml:"label"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}
