package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// UserRepository is the persistence contract for user accounts and the
// redundant owned-note reference list.
//
// The note reference list (AppendNoteRef/RemoveNoteRef) is bookkeeping only:
// ownership checks always read the note's own owner field. The two are
// written by separate statements, never one transaction, so they can diverge
// after a partial failure; that gap is accepted, not compensated.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrUserAlreadyExists] when the composite
	// email+username uniqueness constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by exact email match.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUsername looks an account up by exact username match.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmailAndUsername looks an account up by exact match on both
	// identity fields. Used by the duplicate-account pre-check.
	FindUserByEmailAndUsername(ctx context.Context, email, username string) (models.User, error)

	// AppendNoteRef appends a note to the tail of the user's note list.
	AppendNoteRef(ctx context.Context, userID, noteID int64) error

	// RemoveNoteRef removes a note from the user's note list.
	RemoveNoteRef(ctx context.Context, userID, noteID int64) error
}

// NoteRepository is the persistence contract for note records.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with server-assigned
	// fields (NoteID, CreatedAt, UpdatedAt) populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNoteByID loads a note by its identifier.
	// Returns [ErrNoteNotFound] when no such note exists.
	FindNoteByID(ctx context.Context, noteID int64) (models.Note, error)

	// FindNotesByOwner returns every note owned by the given user, ordered
	// by creation.
	FindNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error)

	// UpdateNote applies a partial update and returns the updated record.
	// Only non-nil fields of the update are written; updated_at is always
	// bumped. Returns [ErrNoteNotFound] when the target does not exist.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note. Returns [ErrNoteNotFound] when the target
	// does not exist.
	DeleteNote(ctx context.Context, noteID int64) error
}
