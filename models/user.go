package models

import "time"

// User represents an account entity used for authentication and note
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by
	// the database at creation time.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address the user signs in with.
	// Uniqueness is enforced by the database.
	Email string `json:"email"`

	// Password carries the plaintext password of an inbound signup or
	// signin request. It is write-only: never serialized back to clients,
	// never persisted, never logged.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored in place of the password.
	// Excluded from JSON entirely.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy of the user safe to serialize in API responses:
// credential fields are cleared, identity fields are kept.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
