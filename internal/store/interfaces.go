package store

import (
	"context"

	"github.com/campuskit/auth-service/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindConflictingUser(ctx context.Context, studentID, username, email string) (models.User, error)
	GetUserWithProfile(ctx context.Context, userID string) (models.UserWithProfile, error)
}

// ProfileRepository persists extended profile data attached to a user account.
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
}

// AuditRepository records security-relevant events such as failed sign-in
// attempts.
type AuditRepository interface {
	InsertFailedLogin(ctx context.Context, attempt models.FailedLoginAttempt) error
}

// TokenRepository persists issued refresh tokens so that token rotation can
// verify a presented token against server-side state.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, record models.AuthTokenRecord) error
	FindRefreshToken(ctx context.Context, token string) (models.AuthTokenRecord, error)
	DeleteRefreshTokensForUser(ctx context.Context, userID string) error
}
