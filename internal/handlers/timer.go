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

// TimerGetter defines the read side of the timer service.
type TimerGetter interface {
	Get(ctx context.Context, userID int64) (*models.TimerDataDB, error)
}

// TimerSaver defines the write side of the timer service.
type TimerSaver interface {
	Save(ctx context.Context, userID int64, timerEnd string, timerActive bool, timerHours, timerMinutes string, notificationID *string) (*models.TimerDataDB, error)
}

// TimerDeleterHandler defines the delete side of the timer service.
type TimerDeleterHandler interface {
	Delete(ctx context.Context, userID int64) error
}

// TimerRequest represents the JSON body for saving timer data
// swagger:model TimerRequest
type TimerRequest struct {
	// RFC 3339 absolute end instant
	// required: true
	TimerEnd string `json:"timer_end"`

	// Active flag
	// default: true
	TimerActive bool `json:"timer_active"`

	// Requested hours, as entered
	TimerHours string `json:"timer_hours"`

	// Requested minutes, as entered
	TimerMinutes string `json:"timer_minutes"`

	// Platform notification handle, optional
	NotificationID *string `json:"notification_id"`
}

// TimerResponse represents a successful save response
// swagger:model TimerResponse
type TimerResponse struct {
	// Success message
	// default: Timer data saved successfully!
	Message string `json:"message"`

	// Stored timer
	Timer *models.TimerDataDB `json:"timer"`
}

// TimerDeleteResponse represents a successful clear response
// swagger:model TimerDeleteResponse
type TimerDeleteResponse struct {
	// Success message
	// default: Timer data cleared successfully!
	Message string `json:"message"`
}

// TimerErrorResponse represents an error response for timer endpoints
// swagger:model TimerErrorResponse
type TimerErrorResponse struct {
	// Error message
	// default: Timer end time is required
	Error string `json:"error"`
}

// NewGetTimerHandler returns an HTTP handler for reading the saved timer.
// The body is the timer object, or JSON null when no timer is saved.
// @Summary Get timer data
// @Description Returns the caller's saved timer, or null when none exists
// @Tags timer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TimerDataDB "Saved timer or null"
// @Failure 401 {object} handlers.TimerErrorResponse "Missing token"
// @Router /api/timer-data [get]
func NewGetTimerHandler(svc TimerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TimerErrorResponse{
				Error: "Access token required",
			})
			return
		}

		timer, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TimerErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(timer)
	}
}

// NewSaveTimerHandler returns an HTTP handler for saving timer data.
// @Summary Save timer data
// @Description Replaces the caller's timer. The end instant is required.
// @Tags timer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param timerRequest body handlers.TimerRequest true "Timer data"
// @Success 200 {object} handlers.TimerResponse "Timer saved"
// @Failure 400 {object} handlers.TimerErrorResponse "Timer end time is required"
// @Failure 401 {object} handlers.TimerErrorResponse "Missing token"
// @Router /api/timer-data [post]
func NewSaveTimerHandler(svc TimerSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TimerErrorResponse{
				Error: "Access token required",
			})
			return
		}

		var req TimerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TimerErrorResponse{
				Error: "Timer end time is required",
			})
			return
		}

		timer, err := svc.Save(r.Context(), claims.UserID, req.TimerEnd, req.TimerActive, req.TimerHours, req.TimerMinutes, req.NotificationID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingTimerEnd):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TimerErrorResponse{
					Error: "Timer end time is required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TimerErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TimerResponse{
			Message: "Timer data saved successfully!",
			Timer:   timer,
		})
	}
}

// NewDeleteTimerHandler returns an HTTP handler for clearing the timer.
// Deleting an absent timer still succeeds.
// @Summary Clear timer data
// @Description Removes the caller's timer
// @Tags timer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.TimerDeleteResponse "Timer cleared"
// @Failure 401 {object} handlers.TimerErrorResponse "Missing token"
// @Router /api/timer-data [delete]
func NewDeleteTimerHandler(svc TimerDeleterHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TimerErrorResponse{
				Error: "Access token required",
			})
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TimerErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TimerDeleteResponse{
			Message: "Timer data cleared successfully!",
		})
	}
}
