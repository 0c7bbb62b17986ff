package store

import (
	"context"

	"github.com/avoronin/go-note-keeper/models"
)

// UserRepository persists user accounts and resolves them during signin.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is
	// already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its unique email.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository executes note operations. Every method takes the owner's
// user ID and restricts its effect to that owner's records: a note that
// exists but belongs to someone else behaves exactly like a missing note.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
	TogglePin(ctx context.Context, userID, noteID int64) (models.Note, error)
}
