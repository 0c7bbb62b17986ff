package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avoronin/go-note-keeper/models"
)

// SessionStore persists the terminal client's login state between runs so a
// user does not have to sign in on every launch.
type SessionStore interface {
	// Save writes the session to disk, replacing any previous one.
	Save(session models.Session) error

	// Load reads the saved session. Returns ErrLocalSessionNotFound when no
	// session file exists.
	Load() (models.Session, error)

	// Clear removes the saved session. Clearing an absent session is not an
	// error.
	Clear() error
}

// fileSessionStore keeps the session as a JSON file. The file is written
// with owner-only permissions because it contains the access token.
type fileSessionStore struct {
	path string
}

// NewFileSessionStore constructs a [SessionStore] backed by the JSON file at
// path. Parent directories are created on the first Save.
func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) Save(session models.Session) error {
	encoded, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, encoded, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

func (s *fileSessionStore) Load() (models.Session, error) {
	encoded, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		return models.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(encoded, &session); err != nil {
		return models.Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}

	if session.Token == "" {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *fileSessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
