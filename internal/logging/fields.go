// Package logging provides standard field definitions for structured logging
package logging

// Standard log field names and level constants.
const (
	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"
	FieldError     = "error"
	FieldUserID    = "user_id"
	FieldAction    = "action"
	FieldDuration  = "duration_ms"
	FieldPage      = "page"
	FieldTotal     = "total"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)
