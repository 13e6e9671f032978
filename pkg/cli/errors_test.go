package cli

import (
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Field:   "matcher.fuzzy_threshold",
		Message: "must be in (0, 1]",
	}

	expected := "config error in matcher.fuzzy_threshold: must be in (0, 1]"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestConfigError_NoField(t *testing.T) {
	err := NewConfigError("", "failed to load config")

	expected := "config error: failed to load config"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestCommandError(t *testing.T) {
	underlying := errors.New("pattern file missing")
	err := NewCommandError("check", underlying)

	expected := "command check failed: pattern file missing"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, underlying) {
		t.Error("Expected errors.Is to reach the wrapped error")
	}
}
