package service

import (
	"github.com/avoronin/go-note-keeper/internal/adapter"
	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/store"
)

// ClientServices bundles the client-side service layer used by the terminal
// client.
type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
}

// NewClientServices wires the client services to the given session store and
// server adapter.
func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(sessions, serverAdapter, logger),
		NoteService: NewClientNoteService(serverAdapter, logger),
	}
}
