package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// Services aggregates every business-logic service of the application.
type Services struct {
	AuthService AuthService
	NoteService NoteService
}

// NewServices wires all services to their repositories and configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		NoteService: NewNoteService(storages.NoteRepository, storages.UserRepository, logger),
	}
}
