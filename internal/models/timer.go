package models

// TimerDataDB represents the single countdown descriptor kept per user.
// TimerHours and TimerMinutes hold the originally requested duration for
// redisplay; the countdown itself is always recomputed from TimerEnd.
type TimerDataDB struct {
	ID             int64   `json:"id" db:"id"`                           // Primary key
	UserID         int64   `json:"user_id" db:"user_id"`                 // Owning user
	TimerEnd       string  `json:"timer_end" db:"timer_end"`             // RFC 3339 absolute end instant
	TimerActive    bool    `json:"timer_active" db:"timer_active"`       // Active flag
	TimerHours     string  `json:"timer_hours" db:"timer_hours"`         // Requested hours, as entered
	TimerMinutes   string  `json:"timer_minutes" db:"timer_minutes"`     // Requested minutes, as entered
	NotificationID *string `json:"notification_id" db:"notification_id"` // Platform notification handle
	CreatedAt      string  `json:"created_at" db:"created_at"`
	UpdatedAt      string  `json:"updated_at" db:"updated_at"`
}
