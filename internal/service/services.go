package service

import (
	"errors"

	"github.com/campuskit/auth-service/internal/config"
	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/internal/store"
)

// Services aggregates the service-layer implementations handed to the
// transport layer at startup.
type Services struct {
	AuthService AuthService
	UserService UserService
}

// NewServices wires the service layer over the given repositories, token
// configuration and best-effort write queue.
func NewServices(repositories *store.Repositories, cfg config.Auth, auditQueue AuditQueue, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories, cfg, auditQueue, logger),
		UserService: NewUserService(repositories, logger),
	}
}

func isNoUserFound(err error) bool {
	return errors.Is(err, store.ErrNoUserWasFound)
}
