package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	// ErrUnsupportedType is returned when Validate receives a model type
	// the validator does not know how to check.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a caller scopes validation to a
	// field name the validator does not recognise.
	ErrUnknownField = errors.New("unknown field for validation")
)

// ValidationError accumulates every rule violation found while validating a
// single input. It is returned as a single error value so callers can match
// it with [errors.As] and serialise the complete violation list.
type ValidationError struct {
	Violations []models.FieldViolation
}

// Error implements the error interface by joining all violations into one
// human-readable message.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// add appends a violation for the given field.
func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, models.FieldViolation{Field: field, Message: message})
}

// orNil returns the accumulated error, or nil when no violations were found.
func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
