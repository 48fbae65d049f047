package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the operation targeted a nonexistent id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means the operation would break a dependent record,
	// e.g. deleting a dealer that still owns storage rows.
	ErrConflict = errors.New("conflicting records exist")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when form input is missing, malformed, or
// references rows that do not exist. The whole operation is rejected; nothing
// is persisted.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidation builds a single-field ValidationError.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// Add appends a field error and returns the receiver for chaining.
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
	return e
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// StoreError wraps an uncategorized persistence failure so handlers can
// distinguish it from domain errors. It is never surfaced as success.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError unless it is nil or already categorized.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	if _, ok := AsValidation(err); ok {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
