package store

import (
	"context"
	"fmt"

	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository]. It appends to the "failed_login_attempts" table.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// InsertFailedLogin appends one failed sign-in attempt record.
//
// Transient driver failures (connection loss, deadlock rollback) are retried
// once, using the connection's error classifier to tell them apart from
// permanent ones.
func (r *auditRepository) InsertFailedLogin(ctx context.Context, attempt models.FailedLoginAttempt) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertFailedLogin, attempt.ID, attempt.UserID, attempt.AttemptTime, attempt.IPAddress)
	if err != nil && r.db.errorClassifier.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*auditRepository.InsertFailedLogin").Msg("transient error, retrying insert")
		_, err = r.db.ExecContext(ctx, insertFailedLogin, attempt.ID, attempt.UserID, attempt.AttemptTime, attempt.IPAddress)
	}
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.InsertFailedLogin").Msg("error inserting failed login attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
