// Package logger wraps zerolog behind the small API the rest of the
// application logs through.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger at creation time.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// HumanReadable switches to the console writer instead of JSON.
	HumanReadable bool
	// Writer defaults to stderr so log output never mixes with the
	// rendered terminal UI on stdout.
	Writer io.Writer
}

// Logger is the application logger. A nil *Logger is safe to call and
// discards everything, so components can take one optionally.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields derives a logger that always carries the given fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	derived := Logger{base: builder.Logger()}
	return &derived
}

// Debug writes a debug entry.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info writes an informational entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn writes a warning entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error entry with the error attached when present.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
