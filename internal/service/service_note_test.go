package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (*noteService, *mock.MockNoteRepository, *mock.MockUserRepository) {
	t.Helper()

	mockNotes := mock.NewMockNoteRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)

	svc := NewNoteService(mockNotes, mockUsers, logger.Nop()).(*noteService)
	return svc, mockNotes, mockUsers
}

// ── AddNote ──────────────────────────────────────────────────────────────────

func TestNoteService_AddNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, mockUsers := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	input := models.AddNoteInput{
		Title:    "Groceries",
		Content:  "milk, eggs",
		Category: models.CategoryPersonal,
	}

	gomock.InOrder(
		mockNotes.EXPECT().
			CreateNote(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
				assert.Equal(t, int64(7), n.OwnerID, "created note must be owned by the caller")
				n.NoteID = 5
				return n, nil
			}),
		mockUsers.EXPECT().
			AppendNoteRef(ctx, int64(7), int64(5)).
			Return(nil),
	)

	created, err := svc.AddNote(ctx, 7, input)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.NoteID)
}

func TestNoteService_AddNote_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl)

	_, err := svc.AddNote(context.Background(), 7, models.AddNoteInput{
		Title:    "ab",
		Content:  "x",
		Category: "bogus",
	})
	require.Error(t, err)

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 3)
}

func TestNoteService_AddNote_NoteRefFailureSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, mockUsers := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	input := models.AddNoteInput{
		Title:    "Groceries",
		Content:  "milk, eggs",
		Category: models.CategoryNone,
	}

	refErr := errors.New("db network error")

	gomock.InOrder(
		mockNotes.EXPECT().
			CreateNote(ctx, gomock.Any()).
			Return(models.Note{NoteID: 5, OwnerID: 7}, nil),
		mockUsers.EXPECT().
			AppendNoteRef(ctx, int64(7), int64(5)).
			Return(refErr),
	)

	// the note row stays in place; only the reference write is reported
	_, err := svc.AddNote(ctx, 7, input)
	assert.ErrorIs(t, err, refErr)
}

// ── EditNote ─────────────────────────────────────────────────────────────────

func TestNoteService_EditNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	newContent := "updated body"
	update := models.NoteUpdate{NoteID: 5, Content: &newContent}

	gomock.InOrder(
		mockNotes.EXPECT().
			FindNoteByID(ctx, int64(5)).
			Return(models.Note{NoteID: 5, OwnerID: 7, Title: "Groceries"}, nil),
		mockNotes.EXPECT().
			UpdateNote(ctx, update).
			Return(models.Note{NoteID: 5, OwnerID: 7, Title: "Groceries", Content: newContent}, nil),
	)

	updated, err := svc.EditNote(ctx, 7, update)
	require.NoError(t, err)
	assert.Equal(t, newContent, updated.Content)
	assert.Equal(t, "Groceries", updated.Title, "unsupplied fields stay untouched")
}

func TestNoteService_EditNote_EmptyUpdateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl)

	_, err := svc.EditNote(context.Background(), 7, models.NoteUpdate{NoteID: 5})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNoteService_EditNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	newContent := "updated body"

	mockNotes.EXPECT().
		FindNoteByID(ctx, int64(404)).
		Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.EditNote(ctx, 7, models.NoteUpdate{NoteID: 404, Content: &newContent})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_EditNote_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	newContent := "updated body"

	mockNotes.EXPECT().
		FindNoteByID(ctx, int64(5)).
		Return(models.Note{NoteID: 5, OwnerID: 99}, nil)

	_, err := svc.EditNote(ctx, 7, models.NoteUpdate{NoteID: 5, Content: &newContent})
	assert.ErrorIs(t, err, ErrNotNoteOwner)
}

// ── GetNote / GetNotes ───────────────────────────────────────────────────────

func TestNoteService_GetNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		FindNoteByID(ctx, int64(5)).
		Return(models.Note{NoteID: 5, OwnerID: 7, Title: "Groceries"}, nil)

	note, err := svc.GetNote(ctx, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", note.Title)
}

func TestNoteService_GetNote_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		FindNoteByID(ctx, int64(5)).
		Return(models.Note{NoteID: 5, OwnerID: 99}, nil)

	_, err := svc.GetNote(ctx, 7, 5)
	assert.ErrorIs(t, err, ErrNotNoteOwner)
}

func TestNoteService_GetNotes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		FindNotesByOwner(ctx, int64(7)).
		Return([]models.Note{{NoteID: 1, OwnerID: 7}, {NoteID: 2, OwnerID: 7}}, nil)

	notes, err := svc.GetNotes(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

// ── DeleteNote ───────────────────────────────────────────────────────────────

func TestNoteService_DeleteNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, mockUsers := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockNotes.EXPECT().
			FindNoteByID(ctx, int64(5)).
			Return(models.Note{NoteID: 5, OwnerID: 7}, nil),
		mockNotes.EXPECT().
			DeleteNote(ctx, int64(5)).
			Return(nil),
		mockUsers.EXPECT().
			RemoveNoteRef(ctx, int64(7), int64(5)).
			Return(nil),
	)

	require.NoError(t, svc.DeleteNote(ctx, 7, 5))
}

func TestNoteService_DeleteNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		FindNoteByID(ctx, int64(404)).
		Return(models.Note{}, store.ErrNoteNotFound)

	err := svc.DeleteNote(ctx, 7, 404)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_DeleteNote_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		FindNoteByID(ctx, int64(5)).
		Return(models.Note{NoteID: 5, OwnerID: 99}, nil)

	err := svc.DeleteNote(ctx, 7, 5)
	assert.ErrorIs(t, err, ErrNotNoteOwner)
}
