package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Username string `json:"username"`

	// Email is the unique address the user registers and logs in with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON and must never hold plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the author attributes safe to embed in post and comment
// payloads: display name and email only.
func (u User) Summary() *UserSummary {
	return &UserSummary{
		Username: u.Username,
		Email:    u.Email,
	}
}

// UserSummary is the reduced author representation attached to posts and
// comments when related entities are eager-loaded.
type UserSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
