// Package timer implements the client-side countdown controller. The
// countdown is anchored to a fixed wall-clock end instant; ticks only
// re-derive the remaining time, so a suspended process wakes up correct.
package timer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/epetrov2017/parkspot/internal/client"
	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/models"
)

// Error variables
var (
	ErrZeroDuration    = errors.New("timer duration must be positive")
	ErrStartInProgress = errors.New("timer start already in progress")
)

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateActive
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateExpired:
		return "expired"
	default:
		return "idle"
	}
}

// Store persists timer rows on the server.
type Store interface {
	GetTimer(ctx context.Context) (*models.TimerDataDB, error)
	SaveTimer(ctx context.Context, payload client.TimerPayload, opts ...client.CallOpt) (*models.TimerDataDB, error)
	DeleteTimer(ctx context.Context) error
}

// Notifier schedules the expiry alert on the platform.
type Notifier interface {
	Schedule(userID int64, fireAt time.Time) (string, error)
	Cancel(id string) error
}

// Controller drives a single countdown for the signed-in user.
type Controller struct {
	store    Store
	notifier Notifier

	// currentUser reports who is signed in right now. Each tick compares
	// it against the countdown's owner so a session switch mid-countdown
	// cannot leak one user's timer into another's view.
	currentUser func() int64

	now  func() time.Time
	tick time.Duration

	onExpire func()

	mu       sync.Mutex
	state    State
	starting bool
	owner    int64
	end      time.Time
	hours    int
	minutes  int
	notifID  string
	stopCh   chan struct{}
}

// ControllerOpt configures the Controller.
type ControllerOpt func(*Controller)

// WithClock replaces the wall-clock source. Tests use a fake.
func WithClock(now func() time.Time) ControllerOpt {
	return func(c *Controller) {
		c.now = now
	}
}

// WithTickInterval replaces the 1-second tick interval.
func WithTickInterval(d time.Duration) ControllerOpt {
	return func(c *Controller) {
		c.tick = d
	}
}

// WithExpiryFunc registers a callback fired once when the countdown expires.
func WithExpiryFunc(fn func()) ControllerOpt {
	return func(c *Controller) {
		c.onExpire = fn
	}
}

// NewController creates an idle Controller.
func NewController(store Store, notifier Notifier, currentUser func() int64, opts ...ControllerOpt) *Controller {
	c := &Controller{
		store:       store,
		notifier:    notifier,
		currentUser: currentUser,
		now:         time.Now,
		tick:        time.Second,
		onExpire:    func() {},
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a countdown of the given duration. A zero total duration is
// rejected before anything is persisted or scheduled. A countdown already
// running is replaced.
func (c *Controller) Start(ctx context.Context, hours, minutes int) error {
	if hours == 0 && minutes == 0 {
		return ErrZeroDuration
	}

	c.mu.Lock()
	if c.starting {
		c.mu.Unlock()
		return ErrStartInProgress
	}
	c.starting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.starting = false
		c.mu.Unlock()
	}()

	owner := c.currentUser()
	end := c.now().Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)

	notifID, err := c.notifier.Schedule(owner, end)
	if err != nil {
		logger.Log.Errorw("failed to schedule expiry notification", "err", err)
		notifID = ""
	}

	c.mu.Lock()
	c.stopTickLocked()
	if c.notifID != "" && c.notifID != notifID {
		if err := c.notifier.Cancel(c.notifID); err != nil {
			logger.Log.Errorw("failed to cancel previous notification", "err", err)
		}
	}
	c.state = StateActive
	c.owner = owner
	c.end = end
	c.hours = hours
	c.minutes = minutes
	c.notifID = notifID
	c.startTickLocked()
	c.mu.Unlock()

	// Persistence is best-effort: the countdown survives on the wall clock
	// even when the server cannot be reached.
	c.persist(ctx, end, hours, minutes, notifID)

	return nil
}

func (c *Controller) persist(ctx context.Context, end time.Time, hours, minutes int, notifID string) {
	payload := client.TimerPayload{
		TimerEnd:     end.UTC().Format(time.RFC3339),
		TimerActive:  true,
		TimerHours:   strconv.Itoa(hours),
		TimerMinutes: strconv.Itoa(minutes),
	}
	if notifID != "" {
		payload.NotificationID = &notifID
	}
	if _, err := c.store.SaveTimer(ctx, payload); err != nil {
		logger.Log.Errorw("failed to persist timer", "err", err)
	}
}

// Cancel stops the countdown, cancels the notification and removes the server
// row. Cancelling an idle controller is a no-op.
func (c *Controller) Cancel(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateIdle {
		c.mu.Unlock()
		return nil
	}
	c.stopTickLocked()
	notifID := c.notifID
	c.resetLocked()
	c.mu.Unlock()

	c.cancelNotification(notifID)

	if err := c.store.DeleteTimer(ctx); err != nil {
		logger.Log.Errorw("failed to delete timer row", "err", err)
		return err
	}
	return nil
}

// Reconcile aligns the controller with the server row after login or resume.
// An absent row leaves the controller idle. A future end restarts the
// countdown with the remaining time recomputed from the wall clock and the
// notification re-armed. A past end signals expiry and removes the stale row.
// The displayed remaining time is never negative.
func (c *Controller) Reconcile(ctx context.Context) error {
	row, err := c.store.GetTimer(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch timer row: %w", err)
	}

	if row == nil {
		c.mu.Lock()
		c.stopTickLocked()
		notifID := c.notifID
		c.resetLocked()
		c.mu.Unlock()

		c.cancelNotification(notifID)
		return nil
	}

	end, err := time.Parse(time.RFC3339, row.TimerEnd)
	if err != nil {
		logger.Log.Errorw("discarding timer row with bad end time", "timer_end", row.TimerEnd)
		if delErr := c.store.DeleteTimer(ctx); delErr != nil {
			logger.Log.Errorw("failed to delete bad timer row", "err", delErr)
		}
		c.mu.Lock()
		c.stopTickLocked()
		notifID := c.notifID
		c.resetLocked()
		c.mu.Unlock()

		c.cancelNotification(notifID)
		return nil
	}

	owner := c.currentUser()

	if end.After(c.now()) {
		hours, _ := strconv.Atoi(row.TimerHours)
		minutes, _ := strconv.Atoi(row.TimerMinutes)

		notifID, err := c.notifier.Schedule(owner, end)
		if err != nil {
			logger.Log.Errorw("failed to re-arm expiry notification", "err", err)
			notifID = ""
		}

		c.mu.Lock()
		c.stopTickLocked()
		oldNotifID := c.notifID
		c.state = StateActive
		c.owner = owner
		c.end = end
		c.hours = hours
		c.minutes = minutes
		c.notifID = notifID
		c.startTickLocked()
		c.mu.Unlock()

		if oldNotifID != notifID {
			c.cancelNotification(oldNotifID)
		}
		return nil
	}

	// The countdown ran out while we were away.
	c.mu.Lock()
	c.stopTickLocked()
	notifID := c.notifID
	c.resetLocked()
	c.state = StateExpired
	c.mu.Unlock()

	c.cancelNotification(notifID)

	if err := c.store.DeleteTimer(ctx); err != nil {
		logger.Log.Errorw("failed to delete expired timer row", "err", err)
	}

	c.onExpire()
	return nil
}

// Logout clears all in-memory countdown state and cancels the notification.
// The server row is preserved so the countdown resumes on the next login.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.stopTickLocked()
	notifID := c.notifID
	c.resetLocked()
	c.mu.Unlock()

	c.cancelNotification(notifID)
}

// cancelNotification cancels an armed notification. Must be called without
// holding c.mu. An empty id is a no-op.
func (c *Controller) cancelNotification(id string) {
	if id == "" {
		return
	}
	if err := c.notifier.Cancel(id); err != nil {
		logger.Log.Errorw("failed to cancel notification", "err", err)
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining returns the time left, never negative.
func (c *Controller) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return 0
	}
	rem := c.end.Sub(c.now())
	if rem < 0 {
		return 0
	}
	return rem
}

func (c *Controller) resetLocked() {
	c.state = StateIdle
	c.owner = 0
	c.end = time.Time{}
	c.hours = 0
	c.minutes = 0
	c.notifID = ""
}

func (c *Controller) startTickLocked() {
	stopCh := make(chan struct{})
	c.stopCh = stopCh

	go func() {
		ticker := time.NewTicker(c.tick)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				if !c.onTick() {
					return
				}
			}
		}
	}()
}

func (c *Controller) stopTickLocked() {
	if c.stopCh != nil {
		close(c.stopCh)
		c.stopCh = nil
	}
}

// onTick re-derives the countdown from the wall clock. It returns false when
// the tick loop should stop.
func (c *Controller) onTick() bool {
	c.mu.Lock()

	if c.state != StateActive {
		c.mu.Unlock()
		return false
	}

	// Ownership guard: the session may have switched under a running
	// countdown. Halt the tick and leave state alone.
	if c.currentUser() != c.owner {
		c.mu.Unlock()
		return false
	}

	if c.now().Before(c.end) {
		c.mu.Unlock()
		return true
	}

	c.stopCh = nil
	c.resetLocked()
	c.state = StateExpired
	c.mu.Unlock()

	if err := c.store.DeleteTimer(context.Background()); err != nil {
		logger.Log.Errorw("failed to delete timer row after expiry", "err", err)
	}

	c.onExpire()
	return false
}

// FormatRemaining renders a duration as HH:MM:SS. Zero and negative values
// render as "00:00:00".
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
