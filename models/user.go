package models

import "time"

// User represents an account row of the authentication service.
// It carries identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID).
	UserID string `json:"user_id"`

	// StudentID is the institution-assigned natural key.
	StudentID string `json:"student_id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username"`

	// Email is the unique contact address used for login.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The hash embeds its own salt and cost; it is never serialized.
	PasswordHash string `json:"-"`

	// Role is the account role carried as a token claim (e.g. "student").
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on any mutation of the account row.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
