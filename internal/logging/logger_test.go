package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewStructuredLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "json", "goAdminPanel", "test")

	logger.Info("should be filtered")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "should be filtered") {
		t.Error("Expected info message to be filtered at warn level")
	}
	if !strings.Contains(output, "should appear") {
		t.Error("Expected warn message to appear")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.WithError(errors.New("simulated failure")).Error("operation failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log output, got %q: %v", buf.String(), err)
	}
	if entry[FieldError] != "simulated failure" {
		t.Errorf("Expected error field 'simulated failure', got %v", entry[FieldError])
	}
}

func TestWithError_NilReturnsSameLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	if logger.WithError(nil) != logger {
		t.Error("Expected WithError(nil) to return the receiver unchanged")
	}
}

func TestWithComponentAndUserID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.WithComponent("mockapi").WithUserID(42).Info("user updated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log output: %v", err)
	}
	if entry[FieldComponent] != "mockapi" {
		t.Errorf("Expected component 'mockapi', got %v", entry[FieldComponent])
	}
	if entry[FieldUserID] != float64(42) {
		t.Errorf("Expected user_id 42, got %v", entry[FieldUserID])
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "text", "goAdminPanel", "test")

	logger.Action("loadUsers", FieldPage, 1)

	if !strings.Contains(buf.String(), "action: loadUsers") {
		t.Errorf("Expected text output with action message, got %q", buf.String())
	}
}
