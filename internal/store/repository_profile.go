package store

import (
	"context"
	"fmt"

	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository].
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertProfile creates the profile row for a user or merges the incoming
// fields into the existing one, in a single atomic statement.
//
// Merge semantics, enforced by the [buildUpsertProfile] statement:
//   - scalar fields keep their stored value when the incoming value is nil
//   - tuition_beneficiary_status is always replaced by the incoming value
//
// The RETURNING clause hands back the post-merge row, which is what the
// caller reports to the client.
//
// Error handling:
//   - Query build failure → wrapped [ErrBuildingSQLQuery].
//   - Driver-level failure → wrapped [ErrExecutingStatement].
//   - Statement succeeded but produced no row → [ErrProfileNotSaved].
func (r *profileRepository) UpsertProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertProfile(profile)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error building query")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.UserProfile
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error: row is nil")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	err = row.Scan(&saved.UserID, &saved.FirstName, &saved.LastName, &saved.Address, &saved.ContactNumber, &saved.Birthdate, &saved.TuitionBeneficiaryStatus)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error: scanning error")
		return models.UserProfile{}, ErrProfileNotSaved
	}

	return saved, nil
}
