package models

import "time"

// Request and response shapes of the HTTP surface. Kept separate from the
// persistence entities so the wire contract can evolve without touching the
// store layer.

// RegisterRequest is the body of POST /auth/register.
// All five fields are required and must be non-empty.
type RegisterRequest struct {
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the canonical token-pair response of a successful login.
// ExpiresAt is the access token expiry computed from the operation time and
// the configured access lifetime, independent of the JWT's own exp encoding.
type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse carries the newly issued access token.
type RefreshResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
}

// ProfileUpdateRequest is the body of PUT /auth/user/{id}. Every field is
// optional; absent scalars keep their stored values, while the absent boolean
// flag resolves to false and replaces the stored value.
type ProfileUpdateRequest struct {
	FirstName                *string `json:"first_name"`
	LastName                 *string `json:"last_name"`
	Address                  *string `json:"address"`
	ContactNumber            *string `json:"contact_number"`
	Birthdate                *Date   `json:"birthdate"`
	TuitionBeneficiaryStatus *bool   `json:"tuition_beneficiary_status"`
}

// ProfileUpdateResponse wraps the merged profile row.
type ProfileUpdateResponse struct {
	Message string      `json:"message"`
	Data    UserProfile `json:"data"`
}

// FailedLoginRequest is the body of POST /auth/failed-login. UserID may be
// absent or malformed; it is then stored as null rather than rejected.
type FailedLoginRequest struct {
	UserID      string     `json:"user_id"`
	AttemptTime *time.Time `json:"attempt_time"`
	IPAddress   *string    `json:"ip_address"`
}

// TokenValidationResponse is the body of GET /user/validate-token/{token}.
type TokenValidationResponse struct {
	Valid     bool      `json:"valid"`
	UserID    string    `json:"user_id,omitempty"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// MessageResponse is the generic acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
