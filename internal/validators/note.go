package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants for note validation scoping.
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"

	// FieldCategory targets the note category enum.
	FieldCategory = "category"
)

// minNoteFieldLen is the minimum trimmed length of both title and content.
const minNoteFieldLen = 3

// allowedCategories is the exhaustive set of NoteCategory values accepted by
// the validator. Any category not present in this slice is considered invalid.
var allowedCategories = []models.NoteCategory{
	models.CategoryNone,
	models.CategoryPersonal,
	models.CategoryTodo,
	models.CategoryWork,
}

// NoteValidator implements the [Validator] interface for note-related
// inputs: AddNoteInput and NoteUpdate, in value and pointer form.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.AddNoteInput / *models.AddNoteInput
//   - models.NoteUpdate / *models.NoteUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddNoteInput:
		return v.validateAddNote(ctx, value, fields...)
	case *models.AddNoteInput:
		return v.validateAddNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidCategory reports whether c is one of the recognized NoteCategory
// values defined in allowedCategories.
func isValidCategory(c models.NoteCategory) bool {
	for _, allowed := range allowedCategories {
		if c == allowed {
			return true
		}
	}
	return false
}

// validateAddNote validates a new note. Every violation found is accumulated
// into a single *[ValidationError].
//
// Default validated fields (when none specified): Title, Content, Category.
func (v *NoteValidator) validateAddNote(_ context.Context, input models.AddNoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategory}
	}

	violations := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if len(strings.TrimSpace(input.Title)) < minNoteFieldLen {
				violations.add(FieldTitle, "title must be at least 3 characters")
			}
		case FieldContent:
			if len(strings.TrimSpace(input.Content)) < minNoteFieldLen {
				violations.add(FieldContent, "content must be at least 3 characters")
			}
		case FieldCategory:
			if !isValidCategory(input.Category) {
				violations.add(FieldCategory, "category must be one of none, personal, todo, work")
			}
		default:
			return ErrUnknownField
		}
	}

	return violations.orNil()
}

// validateNoteUpdate validates a partial note update.
//
// Field-level checks only trigger when the corresponding pointer is non-nil
// (partial update semantics: nil means "do not touch"). Supplied fields are
// held to the same rules as validateAddNote.
//
// A structural rule is enforced first: at least one updatable field must be
// supplied, otherwise the update is rejected outright.
func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if !update.HasChanges() {
		violations := &ValidationError{}
		violations.add("fields", "at least one of title, content or category must be supplied")
		return violations
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategory}
	}

	violations := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil && len(strings.TrimSpace(*update.Title)) < minNoteFieldLen {
				violations.add(FieldTitle, "title must be at least 3 characters")
			}
		case FieldContent:
			if update.Content != nil && len(strings.TrimSpace(*update.Content)) < minNoteFieldLen {
				violations.add(FieldContent, "content must be at least 3 characters")
			}
		case FieldCategory:
			if update.Category != nil && !isValidCategory(*update.Category) {
				violations.add(FieldCategory, "category must be one of none, personal, todo, work")
			}
		default:
			return ErrUnknownField
		}
	}

	return violations.orNil()
}
