package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every token this service signs.
//
// Access tokens carry both UserID and Role; refresh tokens carry UserID only.
// RegisteredClaims provides the standard RFC 7519 fields (sub, exp, iat, iss).
type Claims struct {
	// UserID is the opaque user identifier the token was issued for.
	UserID string `json:"user_id"`

	// Role is the account role claim. Empty on refresh tokens.
	Role string `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with its decoded claim set.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted as a bearer string; the embedded Claims are the
// decoded server-side view and are never serialized as-is.
type Token struct {
	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TokenPair bundles the access and refresh tokens issued by a successful
// login.
type TokenPair struct {
	Access  Token
	Refresh Token
}

// Session is the result of a successful credential or refresh exchange:
// the freshly issued token pair, the owning user, and the access token
// expiry as computed from the operation time and the configured lifetime.
type Session struct {
	Tokens TokenPair

	// ExpiresAt is the access token expiry. It is derived from the clock at
	// issuance time, not decoded back out of the JWT.
	ExpiresAt time.Time

	// User is the authenticated account the session belongs to.
	User User
}
