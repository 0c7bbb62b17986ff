// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package adapter provides the transport layer the terminal client uses to
// talk to the note-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/avoronin/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// note-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called after a
	// successful Signin or when restoring a saved session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Signup sends a registration request with the provided credentials.
	// Registration does not log the user in: the server issues no token,
	// so a Signin call must follow. Returns [ErrConflict] (wrapped) if the
	// email is already taken.
	Signup(ctx context.Context, user models.User) error

	// Signin authenticates the user with the server. On success it stores
	// the returned bearer token via SetToken and returns the session
	// (token plus the sanitized account record). Returns [ErrUnauthorized]
	// (wrapped) on bad credentials.
	Signin(ctx context.Context, user models.User) (models.Session, error)

	// Signout invalidates the session on the server and clears the token
	// held by the adapter. Safe to call without a token.
	Signout(ctx context.Context) error

	// ListNotes fetches all notes of the authenticated user, pinned notes
	// first, newest first within each group.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// SearchNotes fetches the notes whose title or content contains query,
	// case-insensitively, in the same order as ListNotes.
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)

	// CreateNote stores a new note and returns it with its assigned ID and
	// timestamps.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote applies a partial edit to the note identified by noteID
	// and returns the updated record. Returns [ErrNotFound] (wrapped) if
	// the note does not exist or belongs to another user.
	UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note identified by noteID. Returns
	// [ErrNotFound] (wrapped) if the note does not exist or belongs to
	// another user.
	DeleteNote(ctx context.Context, noteID int64) error

	// TogglePin flips the pinned flag of the note identified by noteID and
	// returns the updated record. Returns [ErrNotFound] (wrapped) if the
	// note does not exist or belongs to another user.
	TogglePin(ctx context.Context, noteID int64) (models.Note, error)
}
