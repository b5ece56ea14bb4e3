package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table and
// maintains the owned-note reference list in "user_notes".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash)

	var saved models.User
	if err := row.Scan(&saved.UserID, &saved.Username, &saved.Email, &saved.PasswordHash, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("email", user.Email).
			Msg("failed to insert user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return saved, nil
}

// FindUserByEmail retrieves the account whose email matches exactly.
//
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByUsername retrieves the account whose username matches exactly.
//
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmailAndUsername retrieves the account matching both identity
// fields at once. Used as the duplicate-account pre-check during sign-up.
//
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUserByEmailAndUsername(ctx context.Context, email, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmailAndUsername", findUserByEmailAndUsername, email, username)
}

// findOne executes a single-row user lookup and scans the result.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped in [ErrScanningRow].
func (r *userRepository) findOne(ctx context.Context, funcName string, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.UserID, &found.Username, &found.Email, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", funcName).Msg("no user was found")
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", funcName).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// AppendNoteRef appends the note to the tail of the user's note list.
//
// The position is computed in the same statement as the current maximum plus
// one, so no read-modify-write round trip is needed.
func (r *userRepository) AppendNoteRef(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, appendNoteRef, userID, noteID); err != nil {
		log.Err(err).
			Str("func", "*userRepository.AppendNoteRef").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to append note reference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveNoteRef removes the note from the user's note list.
//
// Removing a reference that does not exist is not an error: the DELETE simply
// affects zero rows.
func (r *userRepository) RemoveNoteRef(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeNoteRef, userID, noteID); err != nil {
		log.Err(err).
			Str("func", "*userRepository.RemoveNoteRef").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to remove note reference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
