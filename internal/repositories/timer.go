package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/models"
)

// TimerReadRepository handles countdown-descriptor read operations.
type TimerReadRepository struct {
	db *sqlx.DB
}

func NewTimerReadRepository(db *sqlx.DB) *TimerReadRepository {
	return &TimerReadRepository{db: db}
}

// GetByUserID returns the user's timer row, or (nil, nil) when none exists.
func (r *TimerReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.TimerDataDB, error) {
	const query = `
		SELECT id, user_id, timer_end, timer_active, timer_hours, timer_minutes,
		       notification_id, created_at, updated_at
		FROM timer_data
		WHERE user_id = ?
	`

	var timer models.TimerDataDB
	err := r.db.GetContext(ctx, &timer, query, userID)

	logger.Log.Infow("timer select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &timer, nil
}

// TimerWriteRepository handles countdown-descriptor write operations.
type TimerWriteRepository struct {
	db *sqlx.DB
}

func NewTimerWriteRepository(db *sqlx.DB) *TimerWriteRepository {
	return &TimerWriteRepository{db: db}
}

// Save replaces the user's timer row wholesale in a single upsert keyed by user_id.
func (r *TimerWriteRepository) Save(ctx context.Context, timer *models.TimerDataDB) (*models.TimerDataDB, error) {
	const query = `
		INSERT INTO timer_data (user_id, timer_end, timer_active, timer_hours, timer_minutes, notification_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			timer_end = excluded.timer_end,
			timer_active = excluded.timer_active,
			timer_hours = excluded.timer_hours,
			timer_minutes = excluded.timer_minutes,
			notification_id = excluded.notification_id,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, user_id, timer_end, timer_active, timer_hours, timer_minutes,
		          notification_id, created_at, updated_at
	`
	args := []any{timer.UserID, timer.TimerEnd, timer.TimerActive, timer.TimerHours, timer.TimerMinutes, timer.NotificationID}

	var saved models.TimerDataDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow("timer upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the user's timer row. Deleting when no row exists is a no-op.
func (r *TimerWriteRepository) Delete(ctx context.Context, userID int64) error {
	const query = `DELETE FROM timer_data WHERE user_id = ?`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("timer delete",
		"query", query,
		"args", []any{userID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
