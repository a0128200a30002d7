package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStaging(t *testing.T) *StagingStore {
	t.Helper()
	store, err := OpenStaging(filepath.Join(t.TempDir(), "staging.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func stagedPayload(lat, lon float64, notes string) SpotPayload {
	return SpotPayload{
		Latitude:  &lat,
		Longitude: &lon,
		Notes:     &notes,
		Timestamp: "2026-01-02T15:04:05Z",
	}
}

func TestStagingStore_EmptySlot(t *testing.T) {
	store := newTestStaging(t)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStagingStore_SetGet(t *testing.T) {
	store := newTestStaging(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, stagedPayload(40.7, -74.0, "level 2")))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 40.7, *got.Latitude)
	assert.Equal(t, "level 2", *got.Notes)
}

func TestStagingStore_SecondSaveOverwrites(t *testing.T) {
	store := newTestStaging(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, stagedPayload(40.7, -74.0, "first")))
	require.NoError(t, store.Set(ctx, stagedPayload(41.0, -73.0, "second")))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 41.0, *got.Latitude)
	assert.Equal(t, "second", *got.Notes)
}

func TestStagingStore_Clear(t *testing.T) {
	store := newTestStaging(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, stagedPayload(40.7, -74.0, "x")))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing an empty slot is fine.
	assert.NoError(t, store.Clear(ctx))
}
