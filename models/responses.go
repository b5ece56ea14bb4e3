package models

// NoteView is the wire projection of a [Note]. Timestamps are normalised to
// numeric epoch seconds so clients do not have to parse RFC 3339 strings.
type NoteView struct {
	NoteID    int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	CreatedAt int64        `json:"createdAt"`
	UpdatedAt int64        `json:"updatedAt"`
}

// NewNoteView converts a persisted [Note] into its wire projection.
func NewNoteView(n Note) NoteView {
	return NoteView{
		NoteID:    n.NoteID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		CreatedAt: n.CreatedAt.Unix(),
		UpdatedAt: n.UpdatedAt.Unix(),
	}
}

// UserInfo is the minimal user projection returned by login: the display
// name only, never the email or any credential material.
type UserInfo struct {
	Name string `json:"name"`
}

// MessageResponse is the generic {message, status} payload used by
// createAccount and deleteNote.
type MessageResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// LoginResponse is the payload of a successful login operation.
type LoginResponse struct {
	Message      string   `json:"message"`
	Status       int      `json:"status"`
	AccessToken  string   `json:"accessToken"`
	CsrfToken    string   `json:"csrfToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserInfo `json:"user"`
}

// RefreshResponse is the payload of a successful refreshToken operation.
// It mirrors login's short-lived token pair without a new refresh token.
type RefreshResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
	CsrfToken   string `json:"csrfToken"`
}

// NoteResponse wraps a single note for addNote and editNote results.
type NoteResponse struct {
	Note    NoteView `json:"note"`
	Message string   `json:"message"`
}

// NotesResponse is the payload of getNotes.
type NotesResponse struct {
	Notes  []NoteView `json:"notes"`
	Status int        `json:"status"`
}

// FieldViolation describes one failed validation rule on one input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope. Errors is populated only for
// validation failures, carrying every violation found in a single pass.
type ErrorResponse struct {
	Message string           `json:"message"`
	Status  int              `json:"status"`
	Errors  []FieldViolation `json:"errors,omitempty"`
}
