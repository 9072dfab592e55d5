package models

import "time"

// AuthTokenRecord is the persisted form of an issued refresh token.
// Persisting it is best-effort: a write failure must never fail the
// surrounding login operation.
type AuthTokenRecord struct {
	// TokenID is the opaque unique identifier of the record (UUID).
	TokenID string `json:"token_id"`

	// UserID is the owner of the refresh token.
	UserID string `json:"user_id"`

	// Token is the compact JWS string of the refresh token.
	Token string `json:"token"`

	// ExpiresAt matches the refresh token's lifetime.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is when the record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AuthTokenRecord model.
func (a AuthTokenRecord) TableName() string {
	return "auth_tokens"
}
