package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigNotFound is returned when a settings file does not exist
	ErrConfigNotFound = errors.New("config not found")

	// ErrInvalidConfig is returned when a settings file cannot be parsed or fails validation
	ErrInvalidConfig = errors.New("invalid config")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigNotFoundError represents a missing settings file
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file '%s' not found", e.Path)
}

func (e *ConfigNotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// NewConfigNotFoundError creates a new ConfigNotFoundError
func NewConfigNotFoundError(path string) *ConfigNotFoundError {
	return &ConfigNotFoundError{Path: path}
}

// InvalidConfigError represents a settings file that failed to parse or validate
type InvalidConfigError struct {
	Path     string
	Problems []string
	Err      error
}

func (e *InvalidConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config file '%s' is invalid: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config file '%s' is invalid: %s", e.Path, strings.Join(e.Problems, "; "))
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

// NewInvalidConfigError creates a new InvalidConfigError. err is the parse
// failure, if any; problems lists validation failures.
func NewInvalidConfigError(path string, err error, problems ...string) *InvalidConfigError {
	return &InvalidConfigError{Path: path, Err: err, Problems: problems}
}
