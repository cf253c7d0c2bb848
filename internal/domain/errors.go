package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrValidation is returned when a manifest document does not match the schema
	ErrValidation = errors.New("validation error")

	// ErrConfiguration is returned when required metadata cannot be extracted
	// from a contract's source or the project layout
	ErrConfiguration = errors.New("configuration error")

	// ErrNotSupported is returned for rollup kinds without chain-specific handling
	ErrNotSupported = errors.New("not supported")

	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a single schema violation at a manifest path
type ValidationError struct {
	Path   []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error at %s: %s", strings.Join(e.Path, "."), e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given path
func NewValidationError(path []string, format string, args ...any) *ValidationError {
	p := make([]string, len(path))
	copy(p, path)
	return &ValidationError{Path: p, Reason: fmt.Sprintf(format, args...)}
}
