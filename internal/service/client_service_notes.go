package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoronin/go-note-keeper/internal/adapter"
	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/models"
)

type clientNoteService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientNoteService constructs a ClientNoteService forwarding all note
// operations to the given server adapter.
func NewClientNoteService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter, logger: logger}
}

func (s *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

func (s *clientNoteService) Search(ctx context.Context, query string) ([]models.Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyQuery)
	}

	notes, err := s.adapter.SearchNotes(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching notes ended with error: %w", err)
	}

	return notes, nil
}

func (s *clientNoteService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if strings.TrimSpace(note.Title) == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyTitle)
	}
	if strings.TrimSpace(note.Content) == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyContent)
	}

	created, err := s.adapter.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("creating note ended with error: %w", err)
	}

	return created, nil
}

func (s *clientNoteService) Update(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error) {
	if noteID <= 0 {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidNoteID)
	}
	if update.IsEmpty() {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyUpdate)
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationEmptyTitle)
	}

	updated, err := s.adapter.UpdateNote(ctx, noteID, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("updating note ended with error: %w", err)
	}

	return updated, nil
}

func (s *clientNoteService) Delete(ctx context.Context, noteID int64) error {
	if noteID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidNoteID)
	}

	if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("deleting note ended with error: %w", err)
	}

	return nil
}

func (s *clientNoteService) TogglePin(ctx context.Context, noteID int64) (models.Note, error) {
	if noteID <= 0 {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidNoteID)
	}

	toggled, err := s.adapter.TogglePin(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("toggling pin ended with error: %w", err)
	}

	return toggled, nil
}
