package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	email := "alice@example.com"
	rows := sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at"}).
		AddRow(1, "alice", "hash", email, "2025-01-01 10:00:00")

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash", &email).
		WillReturnRows(rows)

	user, err := repo.Save(context.Background(), "alice", "hash", &email)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_Conflict(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("UNIQUE constraint failed: users.username"))

	user, err := repo.Save(context.Background(), "alice", "hash", nil)
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	username := "charlie"
	rows := sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at"}).
		AddRow(7, "charlie", "hash", nil, "2025-01-01 10:00:00")

	mock.ExpectQuery("SELECT id, username, password, email, created_at FROM users").
		WillReturnRows(rows)

	user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Nil(t, user.Email)
}

func TestUserReadRepository_GetByUsernameOrEmail_NoRows(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	username := "ghost"
	mock.ExpectQuery("SELECT id, username, password, email, created_at FROM users").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at"}).
		AddRow(3, "dave", "hash", "dave@example.com", "2025-01-01 10:00:00")

	mock.ExpectQuery("SELECT id, username, password, email, created_at FROM users").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "dave", user.Username)
}

func TestUserReadRepository_GetByID_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	mock.ExpectQuery("SELECT id, username, password, email, created_at FROM users").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, user)
}
