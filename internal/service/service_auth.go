package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campuskit/auth-service/internal/config"
	"github.com/campuskit/auth-service/internal/crypto"
	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/internal/store"
	"github.com/campuskit/auth-service/internal/utils"
	"github.com/campuskit/auth-service/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// token lifecycle using bcrypt for password hashing and separate HMAC
// secrets for access and refresh tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository persists issued refresh tokens for later rotation checks.
	tokenRepository store.TokenRepository

	// auditRepository records failed sign-in attempts.
	auditRepository store.AuditRepository

	// auditQueue carries the best-effort writes that must never fail the
	// surrounding operation (failed-login records, refresh token saves).
	auditQueue AuditQueue

	// uuid produces identifiers for new accounts and audit records.
	uuid *utils.UUIDGenerator

	// accessTokenSecret is the HMAC secret used to sign and verify access
	// tokens. Never shared with the refresh secret.
	accessTokenSecret string

	// refreshTokenSecret is the HMAC secret used to sign and verify refresh
	// tokens.
	refreshTokenSecret string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenTTL controls how long a newly issued access token remains valid.
	accessTokenTTL time.Duration

	// refreshTokenTTL controls how long a newly issued refresh token remains valid.
	refreshTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(repositories *store.Repositories, cfg config.Auth, auditQueue AuditQueue, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     repositories.UserRepository,
		tokenRepository:    repositories.TokenRepository,
		auditRepository:    repositories.AuditRepository,
		auditQueue:         auditQueue,
		uuid:               utils.NewUUIDGenerator(),
		accessTokenSecret:  cfg.AccessTokenSecret,
		refreshTokenSecret: cfg.RefreshTokenSecret,
		tokenIssuer:        cfg.TokenIssuer,
		accessTokenTTL:     cfg.AccessTokenTTL,
		refreshTokenTTL:    cfg.RefreshTokenTTL,
		logger:             logger,
	}
}

// Register creates a new user account.
//
// It validates that all five required fields are non-empty, checks that no
// existing account holds the same student ID, username or email (a match on
// any single key is a conflict), hashes the password with bcrypt, and
// persists the account under a fresh identifier.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrUserAlreadyExists if any natural key is already taken.
//   - A wrapped storage error if persistence fails.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.StudentID == "" || request.Username == "" || request.Email == "" ||
		request.Password == "" || request.Role == "" {
		log.Error().Str("func", "*authService.Register").Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// pre-check keeps the conflict answer deterministic across all three keys;
	// the unique indexes still back it up under concurrency
	_, err := a.userRepository.FindConflictingUser(ctx, request.StudentID, request.Username, request.Email)
	if err == nil {
		return models.User{}, store.ErrUserAlreadyExists
	}
	if !isNoUserFound(err) {
		log.Err(err).Str("func", "*authService.Register").Msg("conflict lookup failed")
		return models.User{}, fmt.Errorf("conflict lookup failed: %w", err)
	}

	passwordHash, err := crypto.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.uuid.Generate(),
		StudentID:    request.StudentID,
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
		Role:         request.Role,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password and issues a
// fresh token pair.
//
// A wrong password queues a failed-login audit record before returning; the
// record write is best-effort and never delays or fails the response. The
// refresh token of a successful login is persisted the same way.
//
// Returns the new session or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrNoUserWasFound if no account is registered under the email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, request models.LoginRequest, ipAddress string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("func", "*authService.Login").Msg("invalid login data provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := crypto.CheckPassword(foundUser.PasswordHash, request.Password); err != nil {
		log.Warn().Str("user_id", foundUser.UserID).Msg("wrong password")
		a.queueFailedLogin(foundUser.UserID, ipAddress)
		return models.Session{}, ErrWrongPassword
	}

	return a.createSession(ctx, foundUser)
}

// Refresh rotates a refresh token: the presented token must carry a valid
// signature, be known to the server, and not be past its persisted expiry.
// The old record is removed together with any other outstanding tokens of
// the user, and a fresh pair is issued.
//
// Returns the new session or ErrTokenIsExpiredOrInvalid on any check failure.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSecret, a.tokenIssuer)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.Refresh").Msg("refresh token rejected")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	record, err := a.tokenRepository.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Warn().Err(err).Str("user_id", token.Claims.UserID).Msg("refresh token unknown to server")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	if record.UserID != token.Claims.UserID || time.Now().After(record.ExpiresAt) {
		log.Warn().Str("user_id", token.Claims.UserID).Msg("refresh token record expired or mismatched")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, record.UserID)
	if err != nil {
		log.Err(err).Str("user_id", record.UserID).Msg("refresh token owner lookup failed")
		return models.Session{}, fmt.Errorf("refresh token owner lookup failed: %w", err)
	}

	// rotation: outstanding tokens are invalidated before the new pair is issued
	if err := a.tokenRepository.DeleteRefreshTokensForUser(ctx, record.UserID); err != nil {
		log.Warn().Err(err).Str("user_id", record.UserID).Msg("stale refresh token cleanup failed")
	}

	return a.createSession(ctx, foundUser)
}

// Logout invalidates the caller's outstanding refresh tokens. The operation
// is unconditionally acknowledged: an unparseable token or a failed cleanup
// changes nothing for the client, whose local credentials are gone either way.
func (a *authService) Logout(ctx context.Context, accessToken string) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(accessToken, a.accessTokenSecret, a.tokenIssuer)
	if err != nil {
		return
	}

	userID := token.Claims.UserID
	enqueued := a.auditQueue.Enqueue("delete refresh tokens", func(ctx context.Context) error {
		return a.tokenRepository.DeleteRefreshTokensForUser(ctx, userID)
	})
	if !enqueued {
		log.Warn().Str("user_id", userID).Msg("refresh token cleanup dropped, queue is full")
	}
}

// ValidateToken validates and parses a raw access token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the expiry. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessTokenSecret, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// createSession issues an access/refresh token pair for user and queues the
// best-effort persistence of the refresh token. The session expiry is taken
// from the clock at issuance, not decoded back out of the access token.
func (a *authService) createSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now()

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.accessTokenTTL, a.accessTokenSecret)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, "", a.refreshTokenTTL, a.refreshTokenSecret)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	record := models.AuthTokenRecord{
		TokenID:   a.uuid.Generate(),
		UserID:    user.UserID,
		Token:     refreshToken.SignedString,
		ExpiresAt: now.Add(a.refreshTokenTTL),
	}
	enqueued := a.auditQueue.Enqueue("save refresh token", func(ctx context.Context) error {
		return a.tokenRepository.SaveRefreshToken(ctx, record)
	})
	if !enqueued {
		log.Warn().Str("user_id", user.UserID).Msg("refresh token save dropped, queue is full")
	}

	return models.Session{
		Tokens:    models.TokenPair{Access: accessToken, Refresh: refreshToken},
		ExpiresAt: now.Add(a.accessTokenTTL),
		User:      user,
	}, nil
}

// queueFailedLogin queues the audit record of a rejected credential check.
func (a *authService) queueFailedLogin(userID, ipAddress string) {
	attempt := models.FailedLoginAttempt{
		ID:          a.uuid.Generate(),
		AttemptTime: time.Now(),
	}
	if userID != "" {
		attempt.UserID = &userID
	}
	if ipAddress != "" {
		attempt.IPAddress = &ipAddress
	}

	enqueued := a.auditQueue.Enqueue("record failed login", func(ctx context.Context) error {
		return a.auditRepository.InsertFailedLogin(ctx, attempt)
	})
	if !enqueued {
		a.logger.Warn().Str("user_id", userID).Msg("failed login record dropped, queue is full")
	}
}
