package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrInvalidModule       = errors.New("invalid module")
	ErrUnknownField        = errors.New("unknown field")
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrValidation          = errors.New("validation error")
	ErrUnauthorized        = errors.New("unauthorized")
)

// MsgContainsNUL is the field message for text holding a NUL byte, which
// PostgreSQL text columns cannot store.
const MsgContainsNUL = "must not contain NUL characters"

// ContainsNUL reports whether s holds a NUL byte.
func ContainsNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UnknownFieldError reports a payload key that is not a column of the module table.
type UnknownFieldError struct {
	Module Module
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: unknown field %q", e.Module, e.Field)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// InvalidModuleError reports a module name outside the allow-list.
type InvalidModuleError struct {
	Name string
}

func (e *InvalidModuleError) Error() string {
	return fmt.Sprintf("invalid module %q", e.Name)
}

func (e *InvalidModuleError) Unwrap() error { return ErrInvalidModule }
