package services

import (
	"context"
	"errors"
	"time"

	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/models"
)

// ErrMissingCoordinates is returned when a spot save omits latitude or longitude.
var ErrMissingCoordinates = errors.New("latitude and longitude are required")

// SpotReader defines read-only operations for parking spots.
type SpotReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.ParkingSpotDB, error)
}

// SpotWriter defines write operations for parking spots.
type SpotWriter interface {
	Save(ctx context.Context, spot *models.ParkingSpotDB) (*models.ParkingSpotDB, error)
	Delete(ctx context.Context, userID int64) error
}

// TimerDeleter removes a user's timer row. Clearing a spot force-deletes any
// active timer for the same user.
type TimerDeleter interface {
	Delete(ctx context.Context, userID int64) error
}

// SpotService handles the one-spot-per-user record.
type SpotService struct {
	reader SpotReader
	writer SpotWriter
	timers TimerDeleter
}

// NewSpotService creates a new SpotService instance.
func NewSpotService(reader SpotReader, writer SpotWriter, timers TimerDeleter) *SpotService {
	return &SpotService{
		reader: reader,
		writer: writer,
		timers: timers,
	}
}

// Get returns the user's current spot, or nil when none is saved.
func (svc *SpotService) Get(ctx context.Context, userID int64) (*models.ParkingSpotDB, error) {
	return svc.reader.GetByUserID(ctx, userID)
}

// Save replaces the user's spot. Latitude and longitude are required; the
// timestamp is server-assigned when the caller omits one. Last writer wins.
func (svc *SpotService) Save(ctx context.Context, userID int64, latitude, longitude *float64, address, notes, imageURI *string, timestamp string) (*models.ParkingSpotDB, error) {
	if latitude == nil || longitude == nil {
		return nil, ErrMissingCoordinates
	}

	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	saved, err := svc.writer.Save(ctx, &models.ParkingSpotDB{
		UserID:    userID,
		Latitude:  *latitude,
		Longitude: *longitude,
		Address:   address,
		Notes:     notes,
		ImageURI:  imageURI,
		Timestamp: timestamp,
	})
	if err != nil {
		logger.Log.Errorw("failed to save parking spot", "user_id", userID, "err", err)
		return nil, err
	}
	return saved, nil
}

// Delete clears the user's spot and force-deletes any timer attached to it.
func (svc *SpotService) Delete(ctx context.Context, userID int64) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete parking spot", "user_id", userID, "err", err)
		return err
	}

	if err := svc.timers.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete timer while clearing spot", "user_id", userID, "err", err)
		return err
	}
	return nil
}
