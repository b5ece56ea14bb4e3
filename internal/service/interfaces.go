package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService owns the account lifecycle and the token side of every
// request: sign-up, credential verification, token issuance and the
// per-request verification the auth gate delegates to.
type AuthService interface {
	// CreateAccount validates the sign-up input, hashes the password and
	// persists a new account. Returns the created user on success.
	CreateAccount(ctx context.Context, input models.CreateAccountInput) (models.User, error)

	// Login authenticates by email or username plus password and, on
	// success, issues the full token set: a short-lived access and
	// anti-forgery pair plus a long-lived refresh token.
	Login(ctx context.Context, input models.LoginInput) (models.Session, error)

	// Refresh verifies a long-lived refresh token, re-resolves the user by
	// the embedded email and issues a fresh access and anti-forgery pair.
	// The returned session carries no new refresh token.
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)

	// VerifyRequestTokens checks an access token and its paired anti-forgery
	// token and returns the verified caller identifier. Any verification
	// failure yields an error; the caller decides whether that is fatal.
	VerifyRequestTokens(ctx context.Context, accessToken, csrfToken string) (int64, error)
}

// NoteService executes note CRUD on behalf of an already-verified caller.
// Every method takes the caller's user ID from the auth verdict; ownership
// checks read the note's own owner field.
type NoteService interface {
	AddNote(ctx context.Context, callerID int64, input models.AddNoteInput) (models.Note, error)
	EditNote(ctx context.Context, callerID int64, update models.NoteUpdate) (models.Note, error)
	GetNotes(ctx context.Context, callerID int64) ([]models.Note, error)
	GetNote(ctx context.Context, callerID, noteID int64) (models.Note, error)
	DeleteNote(ctx context.Context, callerID, noteID int64) error
}
