package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	// Test with field
	field := "max_results"
	message := "must not exceed 1000"
	err := NewValidationError(field, message)

	expectedMsg := "validation error for field 'max_results': must not exceed 1000"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field
	err2 := NewValidationError("", message)

	expectedMsg2 := "validation error: must not exceed 1000"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
	if !errors.Is(err2, ErrInvalidInput) {
		t.Error("Expected error without field to match ErrInvalidInput sentinel")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("Validation error should not match ErrInvalidConfig")
	}
}

func TestConfigNotFoundError(t *testing.T) {
	err := NewConfigNotFoundError("/etc/textproc.toml")

	expectedMsg := "config file '/etc/textproc.toml' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrConfigNotFound) {
		t.Error("Expected error to match ErrConfigNotFound sentinel")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("Error should not match ErrInvalidConfig")
	}
}

func TestInvalidConfigError(t *testing.T) {
	parseErr := errors.New("unexpected token")
	err := NewInvalidConfigError("settings.toml", parseErr)

	expectedMsg := "config file 'settings.toml' is invalid: unexpected token"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("Expected error to match ErrInvalidConfig sentinel")
	}
	if !errors.Is(err, parseErr) {
		t.Error("Expected error to unwrap to the parse error")
	}

	err2 := NewInvalidConfigError("settings.toml", nil, "port is required", "max_results_cap must be positive")
	expectedMsg2 := "config file 'settings.toml' is invalid: port is required; max_results_cap must be positive"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that our custom errors can be wrapped and unwrapped
	originalErr := NewConfigNotFoundError("missing.toml")
	wrappedErr := fmt.Errorf("load settings: %w", originalErr)

	// Should still be able to detect the original error
	if !errors.Is(wrappedErr, ErrConfigNotFound) {
		t.Error("Expected wrapped error to still match ErrConfigNotFound sentinel")
	}

	// Should be able to unwrap to get the original error
	var notFound *ConfigNotFoundError
	if !errors.As(wrappedErr, &notFound) {
		t.Fatal("Expected to be able to unwrap to ConfigNotFoundError")
	}

	if notFound.Path != "missing.toml" {
		t.Errorf("Expected path 'missing.toml', got '%s'", notFound.Path)
	}
}
