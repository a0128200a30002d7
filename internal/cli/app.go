package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/epetrov2017/parkspot/internal/client"
	"github.com/epetrov2017/parkspot/internal/models"
	"github.com/epetrov2017/parkspot/internal/timer"
)

// App holds the interactive client session: API client, offline reconciler
// and the countdown controller.
type App struct {
	api        *client.Client
	reconciler *client.Reconciler

	mu    sync.Mutex
	timer *timer.Controller
	user  *models.UserDB

	reader *bufio.Reader
	out    io.Writer
}

// NewApp creates an App reading commands from reader and writing to out.
// The timer controller is attached separately because it needs the app's
// current-user callback.
func NewApp(api *client.Client, reconciler *client.Reconciler, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		api:        api,
		reconciler: reconciler,
		reader:     reader,
		out:        out,
	}
}

// AttachTimer wires the countdown controller.
func (a *App) AttachTimer(t *timer.Controller) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.timer = t
}

// CurrentUserID reports the signed-in user, 0 when logged out. The timer
// controller calls it on every tick.
func (a *App) CurrentUserID() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return 0
	}
	return a.user.ID
}

func (a *App) setUser(u *models.UserDB) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

// forceLogout clears the session after the server rejected the token.
func (a *App) forceLogout() {
	a.mu.Lock()
	t := a.timer
	a.user = nil
	a.mu.Unlock()

	if t != nil {
		t.Logout()
	}
	a.api.ClearToken()
	fmt.Fprintln(a.out, "Session expired, please log in again.")
}

// checkErr prints the error and handles forced logout. It returns true when
// err was non-nil.
func (a *App) checkErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, client.ErrUnauthorized) {
		a.forceLogout()
		return true
	}
	fmt.Fprintf(a.out, "Error: %v\n", err)
	return true
}

// Register creates an account and signs in.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	emailStr, err := GetSimpleText(a.reader, "Email (optional, leave empty to skip)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	var email *string
	if emailStr != "" {
		email = &emailStr
	}

	user, err := a.api.Register(ctx, username, string(password), email)
	if a.checkErr(err) {
		return err
	}

	a.setUser(user)
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.Username)
	return nil
}

// Login authenticates, then replays any staged spot save and reconciles the
// countdown with the server row.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, username, string(password))
	if a.checkErr(err) {
		return err
	}

	a.setUser(user)
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)

	if _, err := a.reconciler.Reconcile(ctx); err == nil {
		fmt.Fprintln(a.out, "Pending parking spot synced.")
	} else if !errors.Is(err, client.ErrNothingStaged) &&
		!errors.Is(err, client.ErrNetworkUnavailable) {
		fmt.Fprintf(a.out, "Sync postponed: %v\n", err)
	}

	a.mu.Lock()
	t := a.timer
	a.mu.Unlock()
	if t != nil {
		if err := t.Reconcile(ctx); err != nil {
			fmt.Fprintf(a.out, "Timer not restored: %v\n", err)
		} else if t.State() == timer.StateActive {
			fmt.Fprintf(a.out, "Timer restored, %s remaining\n", timer.FormatRemaining(t.Remaining()))
		}
	}
	return nil
}

// Park saves the current parking spot; a transport failure stages it locally.
func (a *App) Park(ctx context.Context) error {
	latStr, err := GetSimpleText(a.reader, "Latitude", a.out)
	if err != nil {
		return err
	}
	lonStr, err := GetSimpleText(a.reader, "Longitude", a.out)
	if err != nil {
		return err
	}
	address, err := GetSimpleText(a.reader, "Address (optional)", a.out)
	if err != nil {
		return err
	}
	notes, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Latitude must be a number.")
		return err
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Longitude must be a number.")
		return err
	}

	payload := client.SpotPayload{Latitude: &lat, Longitude: &lon}
	if address != "" {
		payload.Address = &address
	}
	if notes != "" {
		payload.Notes = &notes
	}

	spot, staged, err := a.reconciler.SaveOrStage(ctx, payload)
	if staged {
		fmt.Fprintln(a.out, "Server unreachable; spot staged and will sync later.")
		return nil
	}
	if a.checkErr(err) {
		return err
	}

	fmt.Fprintf(a.out, "Parking spot saved at %.6f, %.6f\n", spot.Latitude, spot.Longitude)
	return nil
}

// Spot shows the saved parking spot.
func (a *App) Spot(ctx context.Context) error {
	spot, err := a.api.GetSpot(ctx)
	if a.checkErr(err) {
		return err
	}
	if spot == nil {
		fmt.Fprintln(a.out, "No parking spot saved.")
		return nil
	}

	fmt.Fprintf(a.out, "Spot: %.6f, %.6f\n", spot.Latitude, spot.Longitude)
	if spot.Address != nil {
		fmt.Fprintf(a.out, "Address: %s\n", *spot.Address)
	}
	if spot.Notes != nil {
		fmt.Fprintf(a.out, "Notes: %s\n", *spot.Notes)
	}
	fmt.Fprintf(a.out, "Saved: %s\n", spot.Timestamp)
	return nil
}

// Directions prints a maps URL pointing back to the saved spot.
func (a *App) Directions(ctx context.Context) error {
	spot, err := a.api.GetSpot(ctx)
	if a.checkErr(err) {
		return err
	}
	if spot == nil {
		fmt.Fprintln(a.out, "No parking spot saved.")
		return nil
	}

	fmt.Fprintf(a.out, "https://www.google.com/maps/dir/?api=1&destination=%f,%f\n",
		spot.Latitude, spot.Longitude)
	return nil
}

// Clear removes the saved spot (and any attached timer row on the server).
func (a *App) Clear(ctx context.Context) error {
	if err := a.api.DeleteSpot(ctx); a.checkErr(err) {
		return err
	}

	a.mu.Lock()
	t := a.timer
	a.mu.Unlock()
	if t != nil {
		// The server dropped the timer row with the spot; align local state.
		if err := t.Reconcile(ctx); err != nil {
			fmt.Fprintf(a.out, "Timer state not refreshed: %v\n", err)
		}
	}

	fmt.Fprintln(a.out, "Parking spot cleared.")
	return nil
}

// TimerStart begins a countdown.
func (a *App) TimerStart(ctx context.Context) error {
	hoursStr, err := GetSimpleText(a.reader, "Hours", a.out)
	if err != nil {
		return err
	}
	minutesStr, err := GetSimpleText(a.reader, "Minutes", a.out)
	if err != nil {
		return err
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		fmt.Fprintln(a.out, "Hours must be a whole number.")
		return err
	}
	minutes, err := strconv.Atoi(minutesStr)
	if err != nil {
		fmt.Fprintln(a.out, "Minutes must be a whole number.")
		return err
	}

	a.mu.Lock()
	t := a.timer
	a.mu.Unlock()
	if t == nil {
		return errors.New("timer not available")
	}

	if err := t.Start(ctx, hours, minutes); err != nil {
		if errors.Is(err, timer.ErrZeroDuration) {
			fmt.Fprintln(a.out, "Timer duration must be greater than zero.")
		} else {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Timer started, %s remaining\n", timer.FormatRemaining(t.Remaining()))
	return nil
}

// TimerCancel stops the countdown.
func (a *App) TimerCancel(ctx context.Context) error {
	a.mu.Lock()
	t := a.timer
	a.mu.Unlock()
	if t == nil {
		return errors.New("timer not available")
	}

	if err := t.Cancel(ctx); a.checkErr(err) {
		return err
	}
	fmt.Fprintln(a.out, "Timer cancelled.")
	return nil
}

// TimerStatus shows the countdown state.
func (a *App) TimerStatus(ctx context.Context) error {
	a.mu.Lock()
	t := a.timer
	a.mu.Unlock()
	if t == nil {
		return errors.New("timer not available")
	}

	switch t.State() {
	case timer.StateActive:
		fmt.Fprintf(a.out, "Timer active, %s remaining\n", timer.FormatRemaining(t.Remaining()))
	case timer.StateExpired:
		fmt.Fprintln(a.out, "Timer expired.")
	default:
		fmt.Fprintln(a.out, "No timer running.")
	}
	return nil
}

// Sync manually replays the staged spot save, skipping transport retries so
// the outcome is immediate.
func (a *App) Sync(ctx context.Context) error {
	spot, err := a.reconciler.Reconcile(ctx, client.SkipRetry())
	if err != nil {
		switch {
		case errors.Is(err, client.ErrNothingStaged):
			fmt.Fprintln(a.out, "Nothing to sync.")
			return nil
		case errors.Is(err, client.ErrNetworkUnavailable):
			fmt.Fprintln(a.out, "No network connection.")
		default:
			a.checkErr(err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Synced. Spot saved at %.6f, %.6f\n", spot.Latitude, spot.Longitude)
	return nil
}

// Logout ends the session. The server keeps the timer row, so the countdown
// resumes on the next login.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	t := a.timer
	a.user = nil
	a.mu.Unlock()

	if t != nil {
		t.Logout()
	}
	a.api.ClearToken()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
