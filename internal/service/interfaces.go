package service

import (
	"context"

	"github.com/campuskit/auth-service/models"
)

// AuthService owns the credential and token lifecycle: account registration,
// credential verification, token issuance and rotation, and token
// introspection.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest, ipAddress string) (models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)
	Logout(ctx context.Context, accessToken string)
	ValidateToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService owns account reads and profile mutations plus the audit trail
// of failed sign-in attempts.
type UserService interface {
	GetUserWithProfile(ctx context.Context, userID string) (models.UserWithProfile, error)
	UpdateProfile(ctx context.Context, userID string, request models.ProfileUpdateRequest) (models.UserProfile, error)
	RecordFailedLogin(ctx context.Context, request models.FailedLoginRequest) error
}

// AuditQueue accepts best-effort background writes. Enqueue never blocks;
// it reports false when the job was dropped because the queue is full.
type AuditQueue interface {
	Enqueue(name string, job func(ctx context.Context) error) bool
}
