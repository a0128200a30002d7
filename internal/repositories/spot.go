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

// SpotReadRepository handles parking-spot read operations.
type SpotReadRepository struct {
	db *sqlx.DB
}

func NewSpotReadRepository(db *sqlx.DB) *SpotReadRepository {
	return &SpotReadRepository{db: db}
}

// GetByUserID returns the user's parking spot, or (nil, nil) when none is saved.
func (r *SpotReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.ParkingSpotDB, error) {
	const query = `
		SELECT id, user_id, latitude, longitude, address, notes, imageUri, timestamp
		FROM parking_spots
		WHERE user_id = ?
	`

	var spot models.ParkingSpotDB
	err := r.db.GetContext(ctx, &spot, query, userID)

	logger.Log.Infow("spot select",
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
	return &spot, nil
}

// SpotWriteRepository handles parking-spot write operations.
type SpotWriteRepository struct {
	db *sqlx.DB
}

func NewSpotWriteRepository(db *sqlx.DB) *SpotWriteRepository {
	return &SpotWriteRepository{db: db}
}

// Save replaces the user's parking spot in a single upsert keyed by user_id,
// so a crash can never leave the user with zero rows mid-replace.
func (r *SpotWriteRepository) Save(ctx context.Context, spot *models.ParkingSpotDB) (*models.ParkingSpotDB, error) {
	const query = `
		INSERT INTO parking_spots (user_id, latitude, longitude, address, notes, imageUri, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			address = excluded.address,
			notes = excluded.notes,
			imageUri = excluded.imageUri,
			timestamp = excluded.timestamp
		RETURNING id, user_id, latitude, longitude, address, notes, imageUri, timestamp
	`
	args := []any{spot.UserID, spot.Latitude, spot.Longitude, spot.Address, spot.Notes, spot.ImageURI, spot.Timestamp}

	var saved models.ParkingSpotDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow("spot upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the user's parking spot. Deleting a user with no spot is a no-op.
func (r *SpotWriteRepository) Delete(ctx context.Context, userID int64) error {
	const query = `DELETE FROM parking_spots WHERE user_id = ?`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("spot delete",
		"query", query,
		"args", []any{userID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
