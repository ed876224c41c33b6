package config

import "fmt"

// ValidationError reports a configuration value that violates its constraint.
// It is a programmer error in the configuration and is never retried.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func newValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
