package models

import "time"

// FailedLoginAttempt is an append-only audit record of a rejected
// authentication attempt. UserID is nullable: an attempt is recorded even
// when the user reference cannot be resolved to a valid identifier.
type FailedLoginAttempt struct {
	// ID is the opaque unique identifier of the audit record (UUID).
	ID string `json:"id"`

	// UserID references the user the attempt was made against, or nil when
	// the supplied reference was absent or malformed.
	UserID *string `json:"user_id"`

	// AttemptTime is when the attempt happened; defaults to the operation
	// time when the caller omits it.
	AttemptTime time.Time `json:"attempt_time"`

	// IPAddress is the caller's network address, when known.
	IPAddress *string `json:"ip_address"`
}

// TableName returns the name of the database table
// associated with the FailedLoginAttempt model.
func (f FailedLoginAttempt) TableName() string {
	return "failed_login_attempts"
}
