package http

import (
	"encoding/json"
	"net/http"

	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/internal/utils"
	"github.com/campuskit/auth-service/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err, "user registration failed")
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, request, utils.ClientIP(r))
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err, "user login failed")
		return
	}

	log.Debug().Str("user_id", session.User.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken:  session.Tokens.Access.SignedString,
		RefreshToken: session.Tokens.Refresh.SignedString,
		ExpiresAt:    session.ExpiresAt,
		UserID:       session.User.UserID,
		Role:         session.User.Role,
	}, http.StatusOK)
}

// logout acknowledges the request unconditionally. When the caller presents
// a valid access token, their outstanding refresh tokens are cleaned up in
// the background; an absent or invalid token changes nothing for the client.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		h.services.AuthService.Logout(ctx, token)
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		log.Err(err).Msg("token refresh failed")
		writeError(w, err, "token refresh failed")
		return
	}

	utils.WriteJSON(w, models.RefreshResponse{
		AccessToken: session.Tokens.Access.SignedString,
		ExpiresAt:   session.ExpiresAt,
		UserID:      session.User.UserID,
		Role:        session.User.Role,
	}, http.StatusOK)
}

// passwordForgot is a stub: password recovery needs an email delivery
// channel this service does not have. The route answers honestly instead of
// pretending to send anything.
func (h *Handler) passwordForgot(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "password recovery is not implemented", http.StatusNotImplemented)
}

// passwordReset is a stub, see passwordForgot.
func (h *Handler) passwordReset(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "password reset is not implemented", http.StatusNotImplemented)
}

// failedLogin records one failed sign-in attempt on behalf of an external
// caller. Unlike the inline recording during login, this write is
// synchronous: the caller asked for it explicitly, so a persistence failure
// is a 500.
func (h *Handler) failedLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.FailedLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.IPAddress == nil {
		ip := utils.ClientIP(r)
		if ip != "" {
			request.IPAddress = &ip
		}
	}

	if err := h.services.UserService.RecordFailedLogin(ctx, request); err != nil {
		log.Err(err).Msg("failed login attempt was not recorded")
		writeError(w, err, "failed login attempt was not recorded")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "failed login attempt recorded"}, http.StatusCreated)
}
