package store

import "github.com/campuskit/auth-service/internal/logger"

// Repositories aggregates every repository implementation backed by the
// shared database connection. It is the single value handed to the service
// layer at startup.
type Repositories struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	AuditRepository   AuditRepository
	TokenRepository   TokenRepository
}

// NewRepositories constructs all PostgreSQL-backed repositories over the
// given connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		AuditRepository:   NewAuditRepository(db, log),
		TokenRepository:   NewTokenRepository(db, log),
	}
}
