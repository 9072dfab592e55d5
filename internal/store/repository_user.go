package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table plus the
// merged read view over "user_profiles".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.StudentID, user.Username, user.Email, user.PasswordHash, user.Role)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.UserID, &user.StudentID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user record registered under the given email
// address.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.UserID, &found.StudentID, &found.Username, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// FindUserByID retrieves the user record with the given opaque identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.UserID, &found.StudentID, &found.Username, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// FindConflictingUser returns any existing user that collides with the given
// natural keys (student ID, username or email). A match on any single key is
// a conflict.
//
// Error handling:
//   - No colliding row → [ErrNoUserWasFound].
//   - Query build failure → wrapped [ErrBuildingSQLQuery].
func (r *userRepository) FindConflictingUser(ctx context.Context, studentID, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindConflictingUser(studentID, username, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindConflictingUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindConflictingUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.UserID, &found.StudentID, &found.Username, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindConflictingUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// GetUserWithProfile retrieves the merged user-plus-profile read view via a
// left outer join, so profile columns come back NULL for users that have no
// profile row yet.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) GetUserWithProfile(ctx context.Context, userID string) (models.UserWithProfile, error) {
	log := logger.FromContext(ctx)

	var view models.UserWithProfile
	row := r.db.QueryRowContext(ctx, getUserWithProfile, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserWithProfile").Msg("error: row is nil")
		return models.UserWithProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(
		&view.UserID, &view.StudentID, &view.Username, &view.Email, &view.Role, &view.CreatedAt, &view.UpdatedAt,
		&view.FirstName, &view.LastName, &view.Address, &view.ContactNumber, &view.Birthdate, &view.TuitionBeneficiaryStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserWithProfile{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserWithProfile").Msg("error: scanning error")
		return models.UserWithProfile{}, err
	}

	return view, nil
}
