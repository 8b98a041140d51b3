package config

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	weekdayNames = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// validatorInstance configures and returns the shared validator
// instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := parseWeekday(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := caldate.ParseDate(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("weekrule", func(fl validator.FieldLevel) bool {
			n := fl.Field().Int()
			return n == 1 || n == 4
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the
// config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// parseWeekday accepts weekday names and numeric form, Sunday being 0.
func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, false
	}
	if wd, ok := weekdayNames[s]; ok {
		return wd, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), true
	}
	return time.Sunday, false
}
