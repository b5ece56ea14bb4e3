package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func catPtr(c models.NoteCategory) *models.NoteCategory {
	return &c
}

func TestNoteValidator_AddNote_Valid(t *testing.T) {
	v := NewNoteValidator()

	for _, category := range []models.NoteCategory{
		models.CategoryNone,
		models.CategoryPersonal,
		models.CategoryTodo,
		models.CategoryWork,
	} {
		err := v.Validate(context.Background(), models.AddNoteInput{
			Title:    "Groceries",
			Content:  "milk, eggs",
			Category: category,
		})
		require.NoError(t, err, "category %q", category)
	}
}

func TestNoteValidator_AddNote_BogusCategory(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), models.AddNoteInput{
		Title:    "Groceries",
		Content:  "milk, eggs",
		Category: "bogus",
	})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{FieldCategory}, violatedFields(t, err))
}

func TestNoteValidator_AddNote_AccumulatesAllViolations(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), models.AddNoteInput{
		Title:    " a ",
		Content:  "",
		Category: "shopping",
	})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{FieldTitle, FieldContent, FieldCategory}, violatedFields(t, err))
}

func TestNoteValidator_NoteUpdate_NoFieldsSupplied(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), models.NoteUpdate{NoteID: 1})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"fields"}, violatedFields(t, err))
}

func TestNoteValidator_NoteUpdate_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		update     models.NoteUpdate
		wantFields []string
	}{
		{
			name:   "only content supplied, valid",
			update: models.NoteUpdate{NoteID: 1, Content: strPtr("updated body")},
		},
		{
			name:       "supplied title too short",
			update:     models.NoteUpdate{NoteID: 1, Title: strPtr("ab")},
			wantFields: []string{FieldTitle},
		},
		{
			name:       "supplied category invalid",
			update:     models.NoteUpdate{NoteID: 1, Category: catPtr("shopping")},
			wantFields: []string{FieldCategory},
		},
		{
			name: "all fields supplied and valid",
			update: models.NoteUpdate{
				NoteID:   1,
				Title:    strPtr("New title"),
				Content:  strPtr("New body"),
				Category: catPtr(models.CategoryWork),
			},
		},
		{
			name: "two supplied fields both invalid",
			update: models.NoteUpdate{
				NoteID:   1,
				Title:    strPtr("  "),
				Category: catPtr(""),
			},
			wantFields: []string{FieldTitle, FieldCategory},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewNoteValidator()
			err := v.Validate(context.Background(), tt.update)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ElementsMatch(t, tt.wantFields, violatedFields(t, err))
		})
	}
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), models.LoginInput{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
