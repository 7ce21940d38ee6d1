package timerbar

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError with errors.Is.
var ErrConfiguration = errors.New("timerbar: invalid configuration")

// ConfigurationError describes one invalid configuration field.
type ConfigurationError struct {
	Field  string
	Reason string
}

func newConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("timerbar: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
