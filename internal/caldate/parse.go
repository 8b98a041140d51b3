package caldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseError reports date text that does not form a valid calendar day.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Input)
}

// Unwrap exposes the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseDate parses a strict ISO yyyy-mm-dd string. It is the boundary
// parser for config files and CLI flags: malformed input is an error, not
// a coerced value.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, &ParseError{Input: s}
	}

	numbers := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, &ParseError{Input: s, Err: err}
		}
		numbers[i] = n
	}

	d := Date{Year: numbers[0], Month: time.Month(numbers[1]), Day: numbers[2]}
	if !d.Equal(New(d.Year, d.Month, d.Day)) {
		return Date{}, &ParseError{Input: s}
	}
	return d, nil
}

// ParseInput parses user-typed date or datetime text from the native text
// input. Unlike ParseDate it fails soft: anything that does not split into
// the expected token count yields nil, meaning "empty selection". Accepted
// shapes are "yyyy-mm-dd" and "yyyy-mm-dd hh:mm".
func ParseInput(s string) *DateTime {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		d, err := ParseDate(fields[0])
		if err != nil {
			return nil
		}
		dt := d.At(0, 0)
		return &dt
	case 2:
		d, err := ParseDate(fields[0])
		if err != nil {
			return nil
		}
		clock := strings.Split(fields[1], ":")
		if len(clock) != 2 {
			return nil
		}
		hour, err := strconv.Atoi(clock[0])
		if err != nil || hour < 0 || hour > 23 {
			return nil
		}
		minute, err := strconv.Atoi(clock[1])
		if err != nil || minute < 0 || minute > 59 {
			return nil
		}
		dt := d.At(hour, minute)
		return &dt
	default:
		return nil
	}
}
