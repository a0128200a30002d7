package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/middlewares"
	"github.com/epetrov2017/parkspot/internal/models"
	"github.com/epetrov2017/parkspot/internal/services"
)

// CurrentUserGetter defines the interface that the service must implement.
type CurrentUserGetter interface {
	GetCurrentUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// MeErrorResponse represents an error response for the current-user endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler that resolves the authenticated user.
// @Summary Current user
// @Description Returns the profile of the user behind the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB "Current user"
// @Failure 401 {object} handlers.MeErrorResponse "Missing token"
// @Failure 404 {object} handlers.MeErrorResponse "User not found"
// @Router /api/users/me [get]
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Access token required",
			})
			return
		}

		user, err := svc.GetCurrentUser(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MeErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
