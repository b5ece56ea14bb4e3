package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations directly against the "notes" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (note_id, owner_id, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns the fully populated
// [models.Note] with server-assigned fields (NoteID, CreatedAt, UpdatedAt).
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := n.DB.QueryRowContext(ctx, createNote, note.Title, note.Content, note.Category, note.OwnerID)

	var saved models.Note
	if err := row.Scan(&saved.NoteID, &saved.Title, &saved.Content, &saved.Category, &saved.OwnerID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("owner_id", note.OwnerID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// FindNoteByID loads a single note by its identifier.
//
// Returns [ErrNoteNotFound] when no row matches.
func (n *noteRepository) FindNoteByID(ctx context.Context, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var found models.Note
	row := n.DB.QueryRowContext(ctx, findNoteByID, noteID)

	if err := row.Scan(&found.NoteID, &found.Title, &found.Content, &found.Category, &found.OwnerID, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "noteRepository.FindNoteByID").
				Int64("note_id", noteID).
				Msg("note was not found")
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.FindNoteByID").
			Int64("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindNotesByOwner retrieves every note owned by the given user, ordered by
// creation. Returns an empty slice when the user owns no notes.
func (n *noteRepository) FindNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.FindNotesByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to build select query")
		return nil, err
	}

	rows, queryErr := n.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.FindNotesByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for getting owner notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 20)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.NoteID,
			&note.Title,
			&note.Content,
			&note.Category,
			&note.OwnerID,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.FindNotesByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.FindNotesByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// UpdateNote applies a partial update to a note and returns the updated
// record.
//
// The UPDATE is built dynamically via [buildUpdateNoteQuery]: only non-nil
// fields produce SET clauses, and updated_at is always bumped. The RETURNING
// clause yields the updated row directly.
//
// Returns [ErrNoteNotFound] when the target row does not exist.
func (n *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", update.NoteID).
			Msg("failed to build update query")
		return models.Note{}, err
	}

	var updated models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)

	if scanErr := row.Scan(&updated.NoteID, &updated.Title, &updated.Content, &updated.Category, &updated.OwnerID, &updated.CreatedAt, &updated.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "noteRepository.UpdateNote").
				Int64("note_id", update.NoteID).
				Msg("note was not found")
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(scanErr).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", update.NoteID).
			Msg("failed to execute update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return updated, nil
}

// DeleteNote removes the note with the given identifier.
//
// Returns [ErrNoteNotFound] when the DELETE affects zero rows.
func (n *noteRepository) DeleteNote(ctx context.Context, noteID int64) error {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, deleteNote, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Msg("note was not found")
		return ErrNoteNotFound
	}

	return nil
}
