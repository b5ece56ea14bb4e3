package models

import "time"

// NoteCategory is the closed set of categories a note may belong to.
type NoteCategory string

const (
	// CategoryNone is the default category for uncategorised notes.
	CategoryNone NoteCategory = "none"

	// CategoryPersonal marks notes with personal content.
	CategoryPersonal NoteCategory = "personal"

	// CategoryTodo marks notes that represent tasks.
	CategoryTodo NoteCategory = "todo"

	// CategoryWork marks work-related notes.
	CategoryWork NoteCategory = "work"
)

// Note represents a single user-owned note record.
//
// OwnerID is set once at creation and never changes afterwards; it is the
// authoritative source for all ownership checks. The redundant entry in the
// owner's note list (user_notes) is bookkeeping only.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	NoteID int64 `json:"id"`

	// Title is the short heading of the note.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// Category is one of the values enumerated by [NoteCategory].
	Category NoteCategory `json:"category"`

	// OwnerID is the identifier of the user the note belongs to.
	OwnerID int64 `json:"-"`

	// CreatedAt is the timestamp the note was first persisted.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is bumped by the database on every mutation.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial update of an existing note.
//
// Nil pointer fields mean "do not touch"; only non-nil fields are written.
// NoteID identifies the target record.
type NoteUpdate struct {
	NoteID   int64         `json:"id"`
	Title    *string       `json:"title,omitempty"`
	Content  *string       `json:"content,omitempty"`
	Category *NoteCategory `json:"category,omitempty"`
}

// HasChanges reports whether at least one updatable field is supplied.
func (u NoteUpdate) HasChanges() bool {
	return u.Title != nil || u.Content != nil || u.Category != nil
}
