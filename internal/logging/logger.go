// Package logging provides structured logging functionality using log/slog
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with additional application-specific functionality
type Logger struct {
	*slog.Logger
	service string
	version string
}

// NewStructuredLogger creates a new structured logger. Format "text" produces
// human-readable output for local development; anything else emits JSON.
func NewStructuredLogger(level, format, service, version string) *Logger {
	return newLogger(os.Stdout, level, format, service, version)
}

// NewTestLogger creates a logger writing to the given sink, for tests.
func NewTestLogger(w io.Writer) *Logger {
	return newLogger(w, "debug", "json", "goAdminPanel", "test")
}

func newLogger(w io.Writer, level, format, service, version string) *Logger {
	var logLevel slog.Level
	switch level {
	case LevelDebug:
		logLevel = slog.LevelDebug
	case LevelWarn:
		logLevel = slog.LevelWarn
	case LevelError:
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger:  slog.New(handler),
		service: service,
		version: version,
	}
}

// WithComponent adds a component name to the logger
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:  l.Logger.With(slog.String(FieldComponent, component)),
		service: l.service,
		version: l.version,
	}
}

// WithError adds error context to the logger
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return &Logger{
		Logger:  l.Logger.With(slog.String(FieldError, err.Error())),
		service: l.service,
		version: l.version,
	}
}

// WithUserID adds the target record id to the logger
func (l *Logger) WithUserID(id int) *Logger {
	return &Logger{
		Logger:  l.Logger.With(slog.Int(FieldUserID, id)),
		service: l.service,
		version: l.version,
	}
}

// WithServiceContext adds service context to the logger
func (l *Logger) WithServiceContext() *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.String(FieldService, l.service),
			slog.String(FieldVersion, l.version),
		),
		service: l.service,
		version: l.version,
	}
}

// Startup logs application startup information
func (l *Logger) Startup(msg string, args ...any) {
	l.WithServiceContext().Info(msg, args...)
}

// Action logs completion of a state-store action
func (l *Logger) Action(action string, args ...any) {
	l.Logger.Info("action: "+action, args...)
}

// ActionError logs a failed state-store action
func (l *Logger) ActionError(action string, err error) {
	l.WithError(err).Error("action failed: " + action)
}

// API logs record-API operations
func (l *Logger) API(msg string, args ...any) {
	l.Logger.Debug("api: "+msg, args...)
}
