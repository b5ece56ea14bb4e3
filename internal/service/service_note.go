package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService.
//
// All mutating methods keep the caller's redundant note reference list in
// "user_notes" up to date via the UserRepository. The note row and the
// reference row are written by separate statements, never one transaction,
// so a crash in between can leave them inconsistent. Ownership checks always
// read the note's own owner field, so a diverged reference list never grants
// access it should not.
type noteService struct {
	noteRepository store.NoteRepository
	userRepository store.UserRepository
	noteValidator  validators.Validator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given repositories.
func NewNoteService(noteRepository store.NoteRepository, userRepository store.UserRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		userRepository: userRepository,
		noteValidator:  validators.NewNoteValidator(),
		logger:         logger,
	}
}

// AddNote validates the input, persists a note owned by the caller and
// appends it to the caller's note reference list.
//
// Returns the persisted note (with server-assigned NoteID and timestamps) or:
//   - *[validators.ValidationError] listing every violated field.
//   - A wrapped storage error if persistence fails. A failure while
//     appending the note reference leaves the already-created note in place.
func (s *noteService) AddNote(ctx context.Context, callerID int64, input models.AddNoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.noteValidator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Int64("caller_id", callerID).Msg("add-note input failed validation")
		return models.Note{}, err
	}

	note := models.Note{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		OwnerID:  callerID,
	}

	createdNote, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "noteService.AddNote").Int64("caller_id", callerID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	if refErr := s.userRepository.AppendNoteRef(ctx, callerID, createdNote.NoteID); refErr != nil {
		log.Err(refErr).
			Str("func", "noteService.AddNote").
			Int64("caller_id", callerID).
			Int64("note_id", createdNote.NoteID).
			Msg("note created but appending note reference failed")
		return models.Note{}, fmt.Errorf("appending note reference failed: %w", refErr)
	}

	return createdNote, nil
}

// EditNote applies a partial update to a note owned by the caller.
//
// At least one field must be supplied; supplied fields are re-validated
// against the same rules as AddNote. Returns:
//   - *[validators.ValidationError] on empty or invalid updates.
//   - [store.ErrNoteNotFound] when the note does not exist.
//   - [ErrNotNoteOwner] when the note belongs to somebody else.
func (s *noteService) EditNote(ctx context.Context, callerID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.noteValidator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Int64("caller_id", callerID).Int64("note_id", update.NoteID).Msg("edit-note input failed validation")
		return models.Note{}, err
	}

	if _, err := s.ownedNote(ctx, callerID, update.NoteID, "noteService.EditNote"); err != nil {
		return models.Note{}, err
	}

	updatedNote, err := s.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		log.Err(err).
			Str("func", "noteService.EditNote").
			Int64("caller_id", callerID).
			Int64("note_id", update.NoteID).
			Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// GetNotes returns every note owned by the caller, oldest first.
func (s *noteService) GetNotes(ctx context.Context, callerID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := s.noteRepository.FindNotesByOwner(ctx, callerID)
	if err != nil {
		log.Err(err).Str("func", "noteService.GetNotes").Int64("caller_id", callerID).Msg("listing owner notes ended with error")
		return nil, fmt.Errorf("listing owner notes ended with error: %w", err)
	}

	return notes, nil
}

// GetNote loads a single note owned by the caller.
//
// Returns [store.ErrNoteNotFound] when the note does not exist and
// [ErrNotNoteOwner] when it belongs to somebody else.
func (s *noteService) GetNote(ctx context.Context, callerID, noteID int64) (models.Note, error) {
	return s.ownedNote(ctx, callerID, noteID, "noteService.GetNote")
}

// DeleteNote removes a note owned by the caller and drops it from the
// caller's note reference list.
//
// Same NotFound and ownership semantics as GetNote. A failure while removing
// the note reference is surfaced even though the note row is already gone.
func (s *noteService) DeleteNote(ctx context.Context, callerID, noteID int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.ownedNote(ctx, callerID, noteID, "noteService.DeleteNote"); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, noteID); err != nil {
		log.Err(err).
			Str("func", "noteService.DeleteNote").
			Int64("caller_id", callerID).
			Int64("note_id", noteID).
			Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	if refErr := s.userRepository.RemoveNoteRef(ctx, callerID, noteID); refErr != nil {
		log.Err(refErr).
			Str("func", "noteService.DeleteNote").
			Int64("caller_id", callerID).
			Int64("note_id", noteID).
			Msg("note deleted but removing note reference failed")
		return fmt.Errorf("removing note reference failed: %w", refErr)
	}

	return nil
}

// ownedNote loads a note and enforces that the caller owns it.
func (s *noteService) ownedNote(ctx context.Context, callerID, noteID int64, funcName string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.FindNoteByID(ctx, noteID)
	if err != nil {
		log.Debug().Err(err).Str("func", funcName).Int64("note_id", noteID).Msg("note lookup failed")
		return models.Note{}, err
	}

	if note.OwnerID != callerID {
		log.Warn().
			Str("func", funcName).
			Int64("caller_id", callerID).
			Int64("owner_id", note.OwnerID).
			Int64("note_id", noteID).
			Msg("caller is not the note owner")
		return models.Note{}, ErrNotNoteOwner
	}

	return note, nil
}
