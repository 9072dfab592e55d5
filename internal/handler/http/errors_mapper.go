package http

import (
	"errors"
	"net/http"

	"github.com/campuskit/auth-service/internal/service"
	"github.com/campuskit/auth-service/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrNotImplemented:          http.StatusNotImplemented,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrProfileNotSaved:   http.StatusInternalServerError,
	store.ErrTokenNotFound:     http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and writes a client-safe body.
// Sentinel errors mapped below 500 speak for themselves; anything that
// resolves to a server-side failure answers with the handler-supplied
// generic message, keeping the underlying cause in the logs only.
func writeError(w http.ResponseWriter, err error, genericMessage string) {
	status := statusFromError(err)
	message := genericMessage

	if status < http.StatusInternalServerError {
		for target, code := range errorStatusMap {
			if code == status && errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
	}

	http.Error(w, message, status)
}
