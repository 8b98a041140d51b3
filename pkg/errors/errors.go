package errors

import (
	"fmt"
)

// ParseError represents a configuration or calendar-feed parsing failure
// with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a violated property contract: malformed
// constraints, an illegal widget input, or a bad config field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FeedError represents a failure while fetching, parsing or expanding an
// event feed.
type FeedError struct {
	Feed string
	Err  error
}

// NewFeedError constructs a FeedError for the named feed.
func NewFeedError(feed string, err error) error {
	return &FeedError{Feed: feed, Err: err}
}

func (e *FeedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Feed != "" {
		return fmt.Sprintf("feed error: %s: %v", e.Feed, e.Err)
	}
	return fmt.Sprintf("feed error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *FeedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
