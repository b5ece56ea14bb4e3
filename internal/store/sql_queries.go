package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmailAndUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1 AND username = $2;`

	appendNoteRef = `INSERT INTO user_notes (user_id, note_id, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM user_notes WHERE user_id = $1));`

	removeNoteRef = `DELETE FROM user_notes
		WHERE user_id = $1 AND note_id = $2;`

	createNote = `INSERT INTO notes (title, content, category, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING note_id, title, content, category, owner_id, created_at, updated_at;`

	findNoteByID = `SELECT note_id, title, content, category, owner_id, created_at, updated_at
		FROM notes
		WHERE note_id = $1;`

	deleteNote = `DELETE FROM notes
		WHERE note_id = $1;`
)

// noteColumns is the canonical column list of the "notes" table, in scan order.
var noteColumns = []string{
	"note_id",
	"title",
	"content",
	"category",
	"owner_id",
	"created_at",
	"updated_at",
}

// buildSelectNotesByOwnerQuery builds the SELECT returning every note owned
// by the given user, oldest first.
func buildSelectNotesByOwnerQuery(ownerID int64) (string, []any, error) {
	query, args, err := sq.
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("note_id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateNoteQuery dynamically builds the partial UPDATE for a note.
//
// Only non-nil fields of update produce SET clauses; updated_at is always
// bumped. The RETURNING clause yields the full updated record so callers can
// respond without a second round trip.
func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	builder := sq.
		Update("notes").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	query, args, err := builder.
		Where(sq.Eq{"note_id": update.NoteID}).
		Suffix("RETURNING note_id, title, content, category, owner_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
