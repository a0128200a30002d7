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

// SpotGetter defines the read side of the parking-spot service.
type SpotGetter interface {
	Get(ctx context.Context, userID int64) (*models.ParkingSpotDB, error)
}

// SpotSaver defines the write side of the parking-spot service.
type SpotSaver interface {
	Save(ctx context.Context, userID int64, latitude, longitude *float64, address, notes, imageURI *string, timestamp string) (*models.ParkingSpotDB, error)
}

// SpotDeleter defines the delete side of the parking-spot service.
type SpotDeleter interface {
	Delete(ctx context.Context, userID int64) error
}

// SpotRequest represents the JSON body for saving a parking spot
// swagger:model SpotRequest
type SpotRequest struct {
	// Latitude
	// required: true
	// default: 40.7128
	Latitude *float64 `json:"latitude"`

	// Longitude
	// required: true
	// default: -74.0060
	Longitude *float64 `json:"longitude"`

	// Reverse-geocoded address, optional
	Address *string `json:"address"`

	// Free-form notes, optional
	Notes *string `json:"notes"`

	// Opaque image reference, optional
	ImageURI *string `json:"imageUri"`

	// RFC 3339 timestamp, server-assigned when omitted
	Timestamp string `json:"timestamp"`
}

// SpotResponse represents a successful save response
// swagger:model SpotResponse
type SpotResponse struct {
	// Success message
	// default: Parking spot saved successfully!
	Message string `json:"message"`

	// Stored spot
	Spot *models.ParkingSpotDB `json:"spot"`
}

// SpotDeleteResponse represents a successful clear response
// swagger:model SpotDeleteResponse
type SpotDeleteResponse struct {
	// Success message
	// default: Parking spot cleared successfully!
	Message string `json:"message"`
}

// SpotErrorResponse represents an error response for spot endpoints
// swagger:model SpotErrorResponse
type SpotErrorResponse struct {
	// Error message
	// default: Latitude and longitude are required
	Error string `json:"error"`
}

// NewGetSpotHandler returns an HTTP handler for reading the saved spot.
// The body is the spot object, or JSON null when no spot is saved.
// @Summary Get parking spot
// @Description Returns the caller's saved parking spot, or null when none exists
// @Tags spot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ParkingSpotDB "Saved spot or null"
// @Failure 401 {object} handlers.SpotErrorResponse "Missing token"
// @Router /api/parking-spot [get]
func NewGetSpotHandler(svc SpotGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SpotErrorResponse{
				Error: "Access token required",
			})
			return
		}

		spot, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SpotErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(spot)
	}
}

// NewSaveSpotHandler returns an HTTP handler for saving the spot.
// @Summary Save parking spot
// @Description Replaces the caller's parking spot. Latitude and longitude are required.
// @Tags spot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param spotRequest body handlers.SpotRequest true "Parking spot"
// @Success 200 {object} handlers.SpotResponse "Spot saved"
// @Failure 400 {object} handlers.SpotErrorResponse "Latitude and longitude are required"
// @Failure 401 {object} handlers.SpotErrorResponse "Missing token"
// @Router /api/parking-spot [post]
func NewSaveSpotHandler(svc SpotSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SpotErrorResponse{
				Error: "Access token required",
			})
			return
		}

		var req SpotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SpotErrorResponse{
				Error: "Latitude and longitude are required",
			})
			return
		}

		spot, err := svc.Save(r.Context(), claims.UserID, req.Latitude, req.Longitude, req.Address, req.Notes, req.ImageURI, req.Timestamp)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCoordinates):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SpotErrorResponse{
					Error: "Latitude and longitude are required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SpotErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SpotResponse{
			Message: "Parking spot saved successfully!",
			Spot:    spot,
		})
	}
}

// NewDeleteSpotHandler returns an HTTP handler for clearing the spot.
// Clearing also removes any timer attached to the spot. Deleting an absent
// spot still succeeds.
// @Summary Clear parking spot
// @Description Removes the caller's parking spot and any attached timer
// @Tags spot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.SpotDeleteResponse "Spot cleared"
// @Failure 401 {object} handlers.SpotErrorResponse "Missing token"
// @Router /api/parking-spot [delete]
func NewDeleteSpotHandler(svc SpotDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SpotErrorResponse{
				Error: "Access token required",
			})
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SpotErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SpotDeleteResponse{
			Message: "Parking spot cleared successfully!",
		})
	}
}
