package service

import (
	"context"

	"github.com/avoronin/go-note-keeper/models"
)

// ClientAuthService defines the client-side contract for registration and
// session management. Implementations talk to the server through a
// [adapter.ServerAdapter] and persist the login session locally so it
// survives client restarts.
type ClientAuthService interface {
	// Signup creates a new account on the server. Registration does not
	// log the user in; a Signin call must follow.
	Signup(ctx context.Context, user models.User) error

	// Signin authenticates against the server, stores the issued token in
	// the adapter, and saves the session locally. Returns the session.
	Signin(ctx context.Context, user models.User) (models.Session, error)

	// Signout ends the session on the server and removes the locally saved
	// session. Safe to call when not signed in.
	Signout(ctx context.Context) error

	// RestoreSession loads a previously saved session from local storage
	// and primes the adapter with its token. Returns
	// store.ErrLocalSessionNotFound when no session is saved.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ClientNoteService defines the client-side contract for working with the
// user's notes. All operations are forwarded to the server; the client keeps
// no note state of its own.
type ClientNoteService interface {
	// List fetches all notes, pinned first, newest first within each group.
	List(ctx context.Context) ([]models.Note, error)

	// Search fetches the notes matching query. A blank query is rejected
	// locally with ErrValidationEmptyQuery.
	Search(ctx context.Context, query string) ([]models.Note, error)

	// Create stores a new note on the server and returns it with its
	// assigned ID. Title and content must be non-empty.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Update applies a partial edit to the note identified by noteID.
	// An update with no fields is rejected locally.
	Update(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error)

	// Delete removes the note identified by noteID.
	Delete(ctx context.Context, noteID int64) error

	// TogglePin flips the pinned flag of the note identified by noteID.
	TogglePin(ctx context.Context, noteID int64) (models.Note, error)
}
