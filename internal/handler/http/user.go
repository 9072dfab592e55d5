package http

import (
	"encoding/json"
	"net/http"

	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/internal/utils"
	"github.com/campuskit/auth-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")

	view, err := h.services.UserService.GetUserWithProfile(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		writeError(w, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")

	var request models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.UserService.UpdateProfile(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile update failed")
		writeError(w, err, "profile update failed")
		return
	}

	utils.WriteJSON(w, models.ProfileUpdateResponse{
		Message: "user updated successfully",
		Data:    saved,
	}, http.StatusOK)
}

// validateToken introspects the access token carried in the URL. An invalid
// token is not an internal failure, so the 401 body still carries a JSON
// verdict rather than a bare error.
func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString := chi.URLParam(r, "token")

	token, err := h.services.AuthService.ValidateToken(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("token validation failed")
		utils.WriteJSON(w, models.TokenValidationResponse{Valid: false}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.TokenValidationResponse{
		Valid:     true,
		UserID:    token.Claims.UserID,
		Role:      token.Claims.Role,
		ExpiresAt: token.Claims.ExpiresAt.Time,
	}, http.StatusOK)
}
