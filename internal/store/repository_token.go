package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It manages the "auth_tokens" table that backs refresh
// token rotation.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRefreshToken persists an issued refresh token record.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, record models.AuthTokenRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertAuthToken, record.TokenID, record.UserID, record.Token, record.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.SaveRefreshToken").Msg("error inserting auth token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindRefreshToken looks up a persisted refresh token record by its compact
// JWS string.
//
// Error handling:
//   - Empty result set → [ErrTokenNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *tokenRepository) FindRefreshToken(ctx context.Context, token string) (models.AuthTokenRecord, error) {
	log := logger.FromContext(ctx)

	var record models.AuthTokenRecord
	row := r.db.QueryRowContext(ctx, findAuthToken, token)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindRefreshToken").Msg("error: row is nil")
		return models.AuthTokenRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&record.TokenID, &record.UserID, &record.Token, &record.ExpiresAt, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthTokenRecord{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindRefreshToken").Msg("error: scanning error")
		return models.AuthTokenRecord{}, err
	}

	return record, nil
}

// DeleteRefreshTokensForUser removes every persisted refresh token belonging
// to the given user, invalidating their outstanding sessions.
func (r *tokenRepository) DeleteRefreshTokensForUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteAuthTokensForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteRefreshTokensForUser").Msg("error deleting auth tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
