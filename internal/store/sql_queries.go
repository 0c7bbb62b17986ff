package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avoronin/go-note-keeper/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createNote = `INSERT INTO notes (user_id, title, content, tags, is_pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING note_id, user_id, title, content, tags, is_pinned, created_at, updated_at;`

	deleteNote = `DELETE FROM notes
		WHERE note_id = $1 AND user_id = $2;`

	// Placeholders are numbered in appearance order: SQLite binds $N by first
	// occurrence, not absolutely like PostgreSQL.
	togglePinNote = `UPDATE notes
		SET is_pinned = NOT is_pinned, updated_at = $1
		WHERE note_id = $2 AND user_id = $3
		RETURNING note_id, user_id, title, content, tags, is_pinned, created_at, updated_at;`
)

// noteColumns is the canonical column order every note scan follows.
var noteColumns = []string{
	"note_id", "user_id", "title", "content", "tags", "is_pinned", "created_at", "updated_at",
}

// psql builds queries with $N placeholders. SQLite accepts the same
// placeholder syntax, so both backends share the builders below.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListNotesQuery selects every note owned by userID, pinned first and
// newest first. The note_id tiebreak keeps the ordering total.
func buildListNotesQuery(userID int64) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_pinned DESC", "created_at DESC", "note_id DESC").
		ToSql()
}

// buildSearchNotesQuery selects the owner's notes whose title or content
// contains the query, case-insensitively. LIKE metacharacters in the query
// are escaped so they match literally.
func buildSearchNotesQuery(userID int64, query string) (string, []any, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	return psql.
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(content) LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("is_pinned DESC", "created_at DESC", "note_id DESC").
		ToSql()
}

// buildUpdateNoteQuery assembles a partial UPDATE from the non-nil fields of
// update. The caller must ensure at least one field is set. The WHERE clause
// carries both the note id and the owner id, so a foreign note updates zero
// rows and surfaces as not-found.
func buildUpdateNoteQuery(userID, noteID int64, update models.NoteUpdate, now time.Time) (string, []any, error) {
	builder := psql.
		Update("notes").
		Set("updated_at", now)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Tags != nil {
		encoded, err := encodeTags(*update.Tags)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("tags", encoded)
	}

	return builder.
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

// escapeLike backslash-escapes the LIKE metacharacters %, _ and \ so user
// input is matched as a literal substring.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
