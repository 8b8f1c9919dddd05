package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user identifier used during authentication.
	// Uniqueness is enforced by the database, not by application checks.
	Username string `json:"username"`

	// Email is the contact address supplied at signup.
	Email string `json:"email"`

	// Password carries the plain-text password of an inbound signup or
	// signin request. It is never persisted and never serialised back to
	// the client (omitempty keeps it out of response bodies).
	Password string `json:"password,omitempty"`

	// PasswordDigest is the one-way bcrypt digest stored instead of the
	// password. Excluded from JSON entirely.
	PasswordDigest string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
