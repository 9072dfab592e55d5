package service

import (
	"context"

	"github.com/campuskit/auth-service/models"
)

// Hand-rolled repository mocks. Each method delegates to an optional
// function field so individual tests override only what they need.

type mockUserRepository struct {
	createUserFn          func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn     func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn        func(ctx context.Context, userID string) (models.User, error)
	findConflictingUserFn func(ctx context.Context, studentID, username, email string) (models.User, error)
	getUserWithProfileFn  func(ctx context.Context, userID string) (models.UserWithProfile, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) FindConflictingUser(ctx context.Context, studentID, username, email string) (models.User, error) {
	return m.findConflictingUserFn(ctx, studentID, username, email)
}

func (m *mockUserRepository) GetUserWithProfile(ctx context.Context, userID string) (models.UserWithProfile, error) {
	return m.getUserWithProfileFn(ctx, userID)
}

type mockProfileRepository struct {
	upsertProfileFn func(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
}

func (m *mockProfileRepository) UpsertProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	return m.upsertProfileFn(ctx, profile)
}

type mockAuditRepository struct {
	insertFailedLoginFn func(ctx context.Context, attempt models.FailedLoginAttempt) error
	inserted            []models.FailedLoginAttempt
}

func (m *mockAuditRepository) InsertFailedLogin(ctx context.Context, attempt models.FailedLoginAttempt) error {
	m.inserted = append(m.inserted, attempt)
	if m.insertFailedLoginFn != nil {
		return m.insertFailedLoginFn(ctx, attempt)
	}
	return nil
}

type mockTokenRepository struct {
	saveRefreshTokenFn           func(ctx context.Context, record models.AuthTokenRecord) error
	findRefreshTokenFn           func(ctx context.Context, token string) (models.AuthTokenRecord, error)
	deleteRefreshTokensForUserFn func(ctx context.Context, userID string) error

	saved   []models.AuthTokenRecord
	deleted []string
}

func (m *mockTokenRepository) SaveRefreshToken(ctx context.Context, record models.AuthTokenRecord) error {
	m.saved = append(m.saved, record)
	if m.saveRefreshTokenFn != nil {
		return m.saveRefreshTokenFn(ctx, record)
	}
	return nil
}

func (m *mockTokenRepository) FindRefreshToken(ctx context.Context, token string) (models.AuthTokenRecord, error) {
	return m.findRefreshTokenFn(ctx, token)
}

func (m *mockTokenRepository) DeleteRefreshTokensForUser(ctx context.Context, userID string) error {
	m.deleted = append(m.deleted, userID)
	if m.deleteRefreshTokensForUserFn != nil {
		return m.deleteRefreshTokensForUserFn(ctx, userID)
	}
	return nil
}

// syncAuditQueue runs queued jobs inline so tests observe their effects
// deterministically. Setting full simulates a saturated queue.
type syncAuditQueue struct {
	full     bool
	enqueued []string
}

func (q *syncAuditQueue) Enqueue(name string, job func(ctx context.Context) error) bool {
	if q.full {
		return false
	}
	q.enqueued = append(q.enqueued, name)
	_ = job(context.Background())
	return true
}
