// Package client implements the HTTP API client, the offline staging slot and
// the reconciler that replays staged writes when connectivity returns.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/models"
)

// Error variables
var (
	// ErrUnauthorized means the server rejected the token. Callers clear
	// the session and force a fresh login.
	ErrUnauthorized = errors.New("authorization required")

	// ErrUnavailable means the request kept failing for transport reasons
	// (network, timeout, 429, 502, 503, 504) after all retries.
	ErrUnavailable = errors.New("server unavailable")
)

// apiError carries a rejection the server returned deliberately.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// statusError marks a transport-class HTTP status worth retrying.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("transient status %d", e.code)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Client talks to the parkspot server.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// The timer tick goroutine reads the token while the REPL goroutine
	// logs in and out, so access goes through tokenMu.
	tokenMu sync.Mutex
	token   string

	maxAttempts  int
	backoffBase  time.Duration
	probeTimeout time.Duration
	wakeTimeout  time.Duration
}

// Opt configures the Client.
type Opt func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Opt {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxAttempts sets the total number of attempts per call.
func WithMaxAttempts(n int) Opt {
	return func(c *Client) {
		c.maxAttempts = n
	}
}

// WithBackoffBase sets the first retry delay. Each retry doubles it.
func WithBackoffBase(d time.Duration) Opt {
	return func(c *Client) {
		c.backoffBase = d
	}
}

// WithProbeTimeouts sets the short health-probe timeout and the long wake-up
// timeout used when the server is slow to answer after idling.
func WithProbeTimeouts(probe, wake time.Duration) Opt {
	return func(c *Client) {
		c.probeTimeout = probe
		c.wakeTimeout = wake
	}
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Opt) *Client {
	c := &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		maxAttempts:  3,
		backoffBase:  time.Second,
		probeTimeout: 5 * time.Second,
		wakeTimeout:  60 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	c.token = token
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	return c.token
}

// ClearToken drops the session token.
func (c *Client) ClearToken() {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	c.token = ""
}

// callOpts holds per-call switches.
type callOpts struct {
	skipRetry bool
}

// CallOpt configures a single call.
type CallOpt func(*callOpts)

// SkipRetry disables transport retries for one call. Manual sync uses it so
// the user gets immediate feedback instead of watching backoff delays.
func SkipRetry() CallOpt {
	return func(o *callOpts) {
		o.skipRetry = true
	}
}

// do runs one API call with bounded retry and exponential backoff.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...CallOpt) error {
	var co callOpts
	for _, opt := range opts {
		opt(&co)
	}

	attempts := c.maxAttempts
	if co.skipRetry {
		attempts = 1
	}

	delay := c.backoffBase
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			logger.Log.Infow("retrying request", "method", method, "path", path, "attempt", attempt+1, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		err := c.once(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// retryable reports whether the call failed for transport reasons. Deliberate
// server rejections are final.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return true
	}
	var ae *apiError
	if errors.As(err, &ae) {
		return false
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, context.Canceled) {
		return false
	}
	// Everything else is a network or timeout failure from the transport.
	return true
}

func (c *Client) once(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case retryableStatus(resp.StatusCode):
		return &statusError{code: resp.StatusCode}
	default:
		var body struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		return &apiError{Status: resp.StatusCode, Message: body.Error}
	}
}

// SpotPayload is the request body for saving a parking spot.
type SpotPayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	ImageURI  *string  `json:"imageUri,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// TimerPayload is the request body for saving timer data.
type TimerPayload struct {
	TimerEnd       string  `json:"timer_end"`
	TimerActive    bool    `json:"timer_active"`
	TimerHours     string  `json:"timer_hours"`
	TimerMinutes   string  `json:"timer_minutes"`
	NotificationID *string `json:"notification_id,omitempty"`
}

type authResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *models.UserDB `json:"user"`
}

type spotResponse struct {
	Message string                `json:"message"`
	Spot    *models.ParkingSpotDB `json:"spot"`
}

type timerResponse struct {
	Message string              `json:"message"`
	Timer   *models.TimerDataDB `json:"timer"`
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, username, password string, email *string) (*models.UserDB, error) {
	body := map[string]any{"username": username, "password": password}
	if email != nil {
		body["email"] = *email
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/register", body, &resp); err != nil {
		return nil, err
	}

	c.SetToken(resp.Token)
	return resp.User, nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, username, password string) (*models.UserDB, error) {
	body := map[string]string{"username": username, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", body, &resp); err != nil {
		return nil, err
	}

	c.SetToken(resp.Token)
	return resp.User, nil
}

// CurrentUser returns the profile behind the stored token.
func (c *Client) CurrentUser(ctx context.Context) (*models.UserDB, error) {
	var user *models.UserDB
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetSpot returns the saved spot, or nil when none exists.
func (c *Client) GetSpot(ctx context.Context) (*models.ParkingSpotDB, error) {
	var spot *models.ParkingSpotDB
	if err := c.do(ctx, http.MethodGet, "/api/parking-spot", nil, &spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// SaveSpot replaces the saved spot.
func (c *Client) SaveSpot(ctx context.Context, payload SpotPayload, opts ...CallOpt) (*models.ParkingSpotDB, error) {
	var resp spotResponse
	if err := c.do(ctx, http.MethodPost, "/api/parking-spot", payload, &resp, opts...); err != nil {
		return nil, err
	}
	return resp.Spot, nil
}

// DeleteSpot clears the saved spot and any attached timer.
func (c *Client) DeleteSpot(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/parking-spot", nil, nil)
}

// GetTimer returns the saved timer, or nil when none exists.
func (c *Client) GetTimer(ctx context.Context) (*models.TimerDataDB, error) {
	var timer *models.TimerDataDB
	if err := c.do(ctx, http.MethodGet, "/api/timer-data", nil, &timer); err != nil {
		return nil, err
	}
	return timer, nil
}

// SaveTimer replaces the saved timer.
func (c *Client) SaveTimer(ctx context.Context, payload TimerPayload, opts ...CallOpt) (*models.TimerDataDB, error) {
	var resp timerResponse
	if err := c.do(ctx, http.MethodPost, "/api/timer-data", payload, &resp, opts...); err != nil {
		return nil, err
	}
	return resp.Timer, nil
}

// DeleteTimer clears the saved timer.
func (c *Client) DeleteTimer(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/timer-data", nil, nil)
}

// Health probes the health endpoint. A short probe comes first; when it fails
// a single long-timeout attempt follows, giving a free-tier host time to wake
// from sleep.
func (c *Client) Health(ctx context.Context) error {
	if err := c.healthOnce(ctx, c.probeTimeout); err == nil {
		return nil
	}
	if err := c.healthOnce(ctx, c.wakeTimeout); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *Client) healthOnce(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	// The context carries the deadline; the regular client's fixed timeout
	// would cut the long wake-up attempt short.
	hc := &http.Client{Transport: c.httpClient.Transport}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}
	if body.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", body.Status)
	}
	return nil
}
