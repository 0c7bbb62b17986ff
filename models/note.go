package models

import "time"

// Note is a single user-owned note. Every note belongs to exactly one user
// and is only reachable through operations scoped to that owner.
type Note struct {
	// NoteID is the internal unique identifier of the note, assigned by
	// the database at creation time.
	NoteID int64 `json:"id"`

	// UserID is the owner of the note. It is resolved server-side from the
	// authenticated session and never taken from the client.
	UserID int64 `json:"-"`

	// Title is a short non-empty heading.
	Title string `json:"title"`

	// Content is the non-empty note body.
	Content string `json:"content"`

	// Tags is an optional set of free-form labels.
	Tags []string `json:"tags"`

	// IsPinned marks the note as pinned. Pinned notes sort before
	// unpinned ones in listings.
	IsPinned bool `json:"isPinned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteUpdate describes a partial edit of a note. Nil fields are left
// untouched; at least one field must be set for an update to be valid.
type NoteUpdate struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Tags == nil
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
