package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/internal/store"
	"github.com/campuskit/auth-service/internal/utils"
	"github.com/campuskit/auth-service/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository    store.UserRepository
	profileRepository store.ProfileRepository
	auditRepository   store.AuditRepository

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewUserService constructs a UserService backed by the given repositories.
func NewUserService(repositories *store.Repositories, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    repositories.UserRepository,
		profileRepository: repositories.ProfileRepository,
		auditRepository:   repositories.AuditRepository,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// GetUserWithProfile returns the merged account-plus-profile view for the
// given user. Malformed identifiers are rejected before any query is issued.
//
// Returns:
//   - ErrInvalidDataProvided if userID is not a well-formed UUID.
//   - store.ErrNoUserWasFound if no account holds the identifier.
func (s *userService) GetUserWithProfile(ctx context.Context, userID string) (models.UserWithProfile, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(userID) {
		log.Error().Str("user_id", userID).Msg("malformed user identifier")
		return models.UserWithProfile{}, ErrInvalidDataProvided
	}

	view, err := s.userRepository.GetUserWithProfile(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		return models.UserWithProfile{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return view, nil
}

// UpdateProfile creates or merges the profile row of the given user and
// returns the post-merge state.
//
// Scalar fields left absent in the request keep their stored values. The
// tuition beneficiary flag always takes the incoming value: an absent flag
// decodes to false and overwrites a stored true.
//
// Returns:
//   - ErrInvalidDataProvided if userID is not a well-formed UUID.
//   - store.ErrNoUserWasFound if no account holds the identifier.
func (s *userService) UpdateProfile(ctx context.Context, userID string, request models.ProfileUpdateRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(userID) {
		log.Error().Str("user_id", userID).Msg("malformed user identifier")
		return models.UserProfile{}, ErrInvalidDataProvided
	}

	// the profile row is anchored to an existing account
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile owner lookup failed")
		return models.UserProfile{}, fmt.Errorf("profile owner lookup failed: %w", err)
	}

	profile := models.UserProfile{
		UserID:        userID,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Address:       request.Address,
		ContactNumber: request.ContactNumber,
		Birthdate:     request.Birthdate,
	}
	if request.TuitionBeneficiaryStatus != nil {
		profile.TuitionBeneficiaryStatus = *request.TuitionBeneficiaryStatus
	}

	saved, err := s.profileRepository.UpsertProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile upsert failed")
		return models.UserProfile{}, fmt.Errorf("profile upsert failed: %w", err)
	}

	return saved, nil
}

// RecordFailedLogin persists one failed sign-in attempt record synchronously.
// Unlike the inline recording during login, a caller of this operation is
// explicitly asking for the write, so a persistence failure is reported.
//
// A missing or malformed user reference is stored as null rather than
// rejected; an absent attempt time defaults to the operation time.
func (s *userService) RecordFailedLogin(ctx context.Context, request models.FailedLoginRequest) error {
	log := logger.FromContext(ctx)

	attempt := models.FailedLoginAttempt{
		ID:          s.uuid.Generate(),
		AttemptTime: time.Now(),
		IPAddress:   request.IPAddress,
	}
	if request.AttemptTime != nil {
		attempt.AttemptTime = *request.AttemptTime
	}
	if utils.IsUUID(request.UserID) {
		userID := request.UserID
		attempt.UserID = &userID
	}

	if err := s.auditRepository.InsertFailedLogin(ctx, attempt); err != nil {
		log.Err(err).Msg("failed login attempt was not recorded")
		return fmt.Errorf("failed login attempt was not recorded: %w", err)
	}

	return nil
}
