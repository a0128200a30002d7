package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/models"
)

// Error variables
var (
	// ErrNetworkUnavailable means the device has no network path to the
	// server, so reconciliation was not attempted.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrNothingStaged means the staging slot is empty.
	ErrNothingStaged = errors.New("nothing staged")
)

// SpotPusher is the part of the API client the reconciler needs.
type SpotPusher interface {
	Health(ctx context.Context) error
	SaveSpot(ctx context.Context, payload SpotPayload, opts ...CallOpt) (*models.ParkingSpotDB, error)
}

// StagingSlot is the part of the staging store the reconciler needs.
type StagingSlot interface {
	Set(ctx context.Context, payload SpotPayload) error
	Get(ctx context.Context) (*SpotPayload, error)
	Clear(ctx context.Context) error
}

// Reconciler replays the staged spot save once connectivity returns. Resume
// and manual sync both go through Reconcile; manual sync skips transport
// retries so the user sees the outcome immediately.
type Reconciler struct {
	api   SpotPusher
	store StagingSlot
	net   NetworkChecker
}

// NewReconciler creates a Reconciler.
func NewReconciler(api SpotPusher, store StagingSlot, net NetworkChecker) *Reconciler {
	return &Reconciler{
		api:   api,
		store: store,
		net:   net,
	}
}

// SaveOrStage tries the save online; on transport failure the payload lands in
// the staging slot and the returned bool is true. Deliberate server rejections
// are returned unstaged: a payload the server refuses once will be refused
// again.
func (r *Reconciler) SaveOrStage(ctx context.Context, payload SpotPayload) (*models.ParkingSpotDB, bool, error) {
	spot, err := r.api.SaveSpot(ctx, payload)
	if err == nil {
		return spot, false, nil
	}

	if !errors.Is(err, ErrUnavailable) {
		return nil, false, err
	}

	if stageErr := r.store.Set(ctx, payload); stageErr != nil {
		logger.Log.Errorw("failed to stage spot after offline save", "err", stageErr)
		return nil, false, err
	}

	logger.Log.Infow("spot save staged for later sync")
	return nil, true, err
}

// Reconcile pushes the staged payload to the server. Preconditions are checked
// in order: network reachable, health endpoint answering, payload present.
// On success the slot is cleared and the canonical spot returned; any failure
// leaves the slot untouched.
func (r *Reconciler) Reconcile(ctx context.Context, opts ...CallOpt) (*models.ParkingSpotDB, error) {
	if !r.net.Online(ctx) {
		return nil, ErrNetworkUnavailable
	}

	if err := r.api.Health(ctx); err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}

	staged, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if staged == nil {
		return nil, ErrNothingStaged
	}

	spot, err := r.api.SaveSpot(ctx, *staged, opts...)
	if err != nil {
		logger.Log.Errorw("failed to push staged spot", "err", err)
		return nil, err
	}

	if err := r.store.Clear(ctx); err != nil {
		logger.Log.Errorw("failed to clear staging slot after sync", "err", err)
		return nil, err
	}

	logger.Log.Infow("staged spot synced")
	return spot, nil
}
