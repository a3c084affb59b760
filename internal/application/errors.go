package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidEntity = errors.New("invalid entity")
	ErrInvalidColumn = errors.New("invalid column")
	ErrInvalidPage   = errors.New("invalid page")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PreferenceError represents a failure reading or writing a stored preference
type PreferenceError struct {
	Key string
	Op  string // load, save, remove or encode
	Err error
}

func (e *PreferenceError) Error() string {
	return fmt.Sprintf("cannot %s preference %s: %v", e.Op, e.Key, e.Err)
}

func (e *PreferenceError) Unwrap() error {
	return e.Err
}

// ColumnError represents an operation on a column the view does not have
type ColumnError struct {
	Kind     string
	ColumnID string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s has no column %q", e.Kind, e.ColumnID)
}

func (e *ColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}
