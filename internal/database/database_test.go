package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parkspot.db")
	require.NoError(t, RunMigrations(path))
	return path
}

func TestRunMigrations_Idempotent(t *testing.T) {
	path := newTestDB(t)

	// A second run must be a no-op, not an error.
	assert.NoError(t, RunMigrations(path))
}

func TestOpen_SchemaPresent(t *testing.T) {
	path := newTestDB(t)

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"users", "parking_spots", "timer_data"} {
		var name string
		err := db.Get(&name, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		assert.NoError(t, err, table)
	}
}

func TestSeedAdmin(t *testing.T) {
	path := newTestDB(t)

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, SeedAdmin(ctx, db, "admin", "admin123"))

	var hash string
	require.NoError(t, db.Get(&hash, "SELECT password FROM users WHERE username = 'admin'"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")))

	// Seeding again must not add a second user.
	require.NoError(t, SeedAdmin(ctx, db, "admin", "admin123"))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users"))
	assert.Equal(t, 1, count)
}

func TestUniqueSpotPerUser(t *testing.T) {
	path := newTestDB(t)

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, SeedAdmin(ctx, db, "admin", "admin123"))

	_, err = db.Exec("INSERT INTO parking_spots (user_id, latitude, longitude) VALUES (1, 40.7, -74.0)")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO parking_spots (user_id, latitude, longitude) VALUES (1, 41.0, -73.0)")
	assert.Error(t, err)
}
