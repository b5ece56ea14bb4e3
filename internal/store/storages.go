package store

import "github.com/MKhiriev/go-note-keeper/internal/logger"

// Storages aggregates every repository the application persists through.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}
}
