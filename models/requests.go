package models

// CreateAccountInput carries the fields of a createAccount operation.
type CreateAccountInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput carries the fields of a login operation. LoginID is either the
// user's email or username; the service disambiguates by the presence of "@".
type LoginInput struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// AddNoteInput carries the fields of an addNote operation.
type AddNoteInput struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Category NoteCategory `json:"category"`
}

// NoteIDInput identifies a single note for getNote and deleteNote.
type NoteIDInput struct {
	NoteID int64 `json:"id"`
}
