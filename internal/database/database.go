// Package database provides the SQLite connection, schema migrations and the
// initial admin seed.
package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
	"golang.org/x/crypto/bcrypt"

	"github.com/epetrov2017/parkspot/internal/logger"
)

// Open opens the SQLite database at path and verifies the connection.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The driver serializes writes; a single connection avoids SQLITE_BUSY
	// under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// SeedAdmin inserts the default admin account when the users table is empty,
// so a fresh deployment is usable without a manual signup step.
func SeedAdmin(ctx context.Context, db *sqlx.DB, username, password string) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users"); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, string(hash),
	); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.Log.Infow("seeded default admin user", "username", username)
	return nil
}
