package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/epetrov2017/parkspot/internal/models"
)

func TestSpotWriteRepository_Save_Upsert(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSpotWriteRepository(sqlxDB)

	address := "Lot A"
	rows := sqlmock.NewRows([]string{"id", "user_id", "latitude", "longitude", "address", "notes", "imageUri", "timestamp"}).
		AddRow(1, 5, 29.76, -95.37, address, nil, nil, "2025-01-01T10:00:00Z")

	mock.ExpectQuery("INSERT INTO parking_spots .+ ON CONFLICT\\(user_id\\) DO UPDATE").
		WillReturnRows(rows)

	saved, err := repo.Save(context.Background(), &models.ParkingSpotDB{
		UserID:    5,
		Latitude:  29.76,
		Longitude: -95.37,
		Address:   &address,
		Timestamp: "2025-01-01T10:00:00Z",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), saved.UserID)
	assert.Equal(t, 29.76, saved.Latitude)
	assert.NotNil(t, saved.Address)
	assert.Equal(t, "Lot A", *saved.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotWriteRepository_Save_Error(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSpotWriteRepository(sqlxDB)

	mock.ExpectQuery("INSERT INTO parking_spots").
		WillReturnError(errors.New("disk I/O error"))

	saved, err := repo.Save(context.Background(), &models.ParkingSpotDB{UserID: 5})
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestSpotWriteRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSpotWriteRepository(sqlxDB)

	mock.ExpectExec("DELETE FROM parking_spots WHERE user_id = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotWriteRepository_Delete_NoRows(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSpotWriteRepository(sqlxDB)

	mock.ExpectExec("DELETE FROM parking_spots WHERE user_id = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Deleting a nonexistent spot is not an error.
	err := repo.Delete(context.Background(), 5)
	assert.NoError(t, err)
}

func TestSpotReadRepository_GetByUserID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSpotReadRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"id", "user_id", "latitude", "longitude", "address", "notes", "imageUri", "timestamp"}).
		AddRow(2, 5, 40.71, -74.0, nil, "level 3, near the elevator", nil, "2025-01-02T08:30:00Z")

	mock.ExpectQuery("SELECT id, user_id, latitude, longitude, address, notes, imageUri, timestamp FROM parking_spots").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	spot, err := repo.GetByUserID(context.Background(), 5)
	assert.NoError(t, err)
	assert.NotNil(t, spot)
	assert.Nil(t, spot.Address)
	assert.Equal(t, "level 3, near the elevator", *spot.Notes)
}

func TestSpotReadRepository_GetByUserID_Empty(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSpotReadRepository(sqlxDB)

	mock.ExpectQuery("SELECT id, user_id, latitude, longitude, address, notes, imageUri, timestamp FROM parking_spots").
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	spot, err := repo.GetByUserID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, spot)
}
