package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/store"
	"github.com/avoronin/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService. It validates
// incoming data and delegates persistence to a NoteRepository, always passing
// the authenticated owner's user ID so the storage layer can scope every
// query to that owner.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote persists a new note owned by userID.
//
// The note's owner is always taken from userID; any owner carried inside the
// note value is discarded. A note must have a non-empty title and content.
func (s *noteService) CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}
	if strings.TrimSpace(note.Title) == "" {
		log.Error().Int64("user_id", userID).Msg("note creation with empty title")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyTitle)
	}
	if strings.TrimSpace(note.Content) == "" {
		log.Error().Int64("user_id", userID).Msg("note creation with empty content")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyContent)
	}

	note.UserID = userID

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllNotes returns every note owned by userID, pinned first and newest
// first. An owner with no notes gets an empty slice.
func (s *noteService) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}

	notes, err := s.noteRepository.GetAllNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("notes listing ended with error")
		return nil, fmt.Errorf("notes listing ended with error: %w", err)
	}

	return notes, nil
}

// SearchNotes returns the owner's notes matching query as a case-insensitive
// substring of title or content. An empty or all-whitespace query is a
// validation error, not an empty result.
func (s *noteService) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyQuery)
	}

	notes, err := s.noteRepository.SearchNotes(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("notes search ended with error")
		return nil, fmt.Errorf("notes search ended with error: %w", err)
	}

	return notes, nil
}

// UpdateNote applies the provided partial update to the owner's note. An
// update carrying no fields is rejected; a title set to the empty string is
// rejected the same way an empty title is at creation.
//
// Returns store.ErrNoteNotFound (wrapped) when the note does not exist for
// this owner.
func (s *noteService) UpdateNote(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}
	if update.IsEmpty() {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyUpdate)
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyTitle)
	}

	updated, err := s.noteRepository.UpdateNote(ctx, userID, noteID, update)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes the owner's note. Returns store.ErrNoteNotFound
// (wrapped) when no matching note exists, so a repeated delete fails the
// same way as a delete of a foreign note.
func (s *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}

	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// TogglePin flips the pinned flag of the owner's note and returns the
// updated record. The flip is atomic in storage, so two toggles always
// cancel out.
func (s *noteService) TogglePin(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}

	toggled, err := s.noteRepository.TogglePin(ctx, userID, noteID)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("pin toggle ended with error")
		return models.Note{}, fmt.Errorf("pin toggle ended with error: %w", err)
	}

	return toggled, nil
}
