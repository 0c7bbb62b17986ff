package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// Every query carries the owner's user_id in its WHERE clause, so records
// belonging to other users are invisible: a foreign note id and a missing
// note id are indistinguishable to the caller.
//
// Each mutation is a single SQL statement — a client disconnecting
// mid-request can never leave a note half-written.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a new note owned by note.UserID and returns the stored
// record with server-assigned fields (NoteID, timestamps).
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	encodedTags, err := encodeTags(note.Tags)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to encode tags")
		return models.Note{}, fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}

	now := time.Now().UTC()
	row := r.DB.QueryRowContext(ctx, createNote,
		note.UserID, note.Title, note.Content, encodedTags, note.IsPinned, now, now)

	created, err := scanNote(row)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, err
	}

	return created, nil
}

// GetAllNotes returns every note owned by userID, pinned notes first, then
// newest first. An owner with no notes gets an empty slice, not an error.
func (r *noteRepository) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetAllNotes").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "noteRepository.GetAllNotes", userID, query, args)
}

// SearchNotes returns the owner's notes whose title or content contains the
// query as a case-insensitive substring. An empty result is valid.
func (r *noteRepository) SearchNotes(ctx context.Context, userID int64, searchQuery string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchNotesQuery(userID, searchQuery)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SearchNotes").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "noteRepository.SearchNotes", userID, query, args)
}

// UpdateNote applies the non-nil fields of update to the note identified by
// noteID and owned by userID, returning the updated record.
//
// Returns [ErrNoteNotFound] when the note does not exist for this owner —
// including when it exists but belongs to another user.
func (r *noteRepository) UpdateNote(ctx context.Context, userID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(userID, noteID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to execute update query")
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote removes the note identified by noteID and owned by userID.
//
// Returns [ErrNoteNotFound] when no matching note exists, which makes a
// repeated delete fail the same way as a delete of a foreign note.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// TogglePin atomically flips the pinned flag of the note identified by
// noteID and owned by userID, returning the updated record. The flip happens
// inside a single UPDATE, so applying it twice always restores the original
// state regardless of concurrent requests.
func (r *noteRepository) TogglePin(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	updated, err := scanNote(r.DB.QueryRowContext(ctx, togglePinNote, time.Now().UTC(), noteID, userID))
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.TogglePin").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to execute pin toggle query")
		return models.Note{}, err
	}

	return updated, nil
}

// queryNotes executes a multi-row note query and scans the result set.
func (r *noteRepository) queryNotes(ctx context.Context, caller string, userID int64, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, scanErr
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one note row in [noteColumns] order and decodes its tags.
// sql.ErrNoRows is translated to [ErrNoteNotFound].
func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	var encodedTags string

	err := row.Scan(
		&note.NoteID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&encodedTags,
		&note.IsPinned,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	note.Tags, err = decodeTags(encodedTags)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}

	return note, nil
}

// encodeTags serializes a tag list to its stored JSON form. A nil slice is
// stored as the empty list so decoding always yields a usable value.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	encoded, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func decodeTags(encoded string) ([]string, error) {
	if encoded == "" {
		return []string{}, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(encoded), &tags); err != nil {
		return nil, err
	}

	return tags, nil
}
