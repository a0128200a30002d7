package services

import (
	"context"
	"errors"

	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/models"
)

// ErrMissingTimerEnd is returned when a timer save omits the end instant.
var ErrMissingTimerEnd = errors.New("timer end time is required")

// TimerReader defines read-only operations for timer rows.
type TimerReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.TimerDataDB, error)
}

// TimerWriter defines write operations for timer rows.
type TimerWriter interface {
	Save(ctx context.Context, timer *models.TimerDataDB) (*models.TimerDataDB, error)
	Delete(ctx context.Context, userID int64) error
}

// TimerService handles the one-timer-per-user countdown descriptor.
type TimerService struct {
	reader TimerReader
	writer TimerWriter
}

// NewTimerService creates a new TimerService instance.
func NewTimerService(reader TimerReader, writer TimerWriter) *TimerService {
	return &TimerService{
		reader: reader,
		writer: writer,
	}
}

// Get returns the user's timer row, or nil when none exists.
func (svc *TimerService) Get(ctx context.Context, userID int64) (*models.TimerDataDB, error) {
	return svc.reader.GetByUserID(ctx, userID)
}

// Save replaces the user's timer row wholesale.
func (svc *TimerService) Save(ctx context.Context, userID int64, timerEnd string, timerActive bool, timerHours, timerMinutes string, notificationID *string) (*models.TimerDataDB, error) {
	if timerEnd == "" {
		return nil, ErrMissingTimerEnd
	}

	saved, err := svc.writer.Save(ctx, &models.TimerDataDB{
		UserID:         userID,
		TimerEnd:       timerEnd,
		TimerActive:    timerActive,
		TimerHours:     timerHours,
		TimerMinutes:   timerMinutes,
		NotificationID: notificationID,
	})
	if err != nil {
		logger.Log.Errorw("failed to save timer data", "user_id", userID, "err", err)
		return nil, err
	}
	return saved, nil
}

// Delete removes the user's timer row.
func (svc *TimerService) Delete(ctx context.Context, userID int64) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete timer data", "user_id", userID, "err", err)
		return err
	}
	return nil
}
