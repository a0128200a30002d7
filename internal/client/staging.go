package client

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// StagingStore persists at most one pending spot save in a local SQLite file.
// A later failed save overwrites the earlier one; the newest location is the
// only one worth recovering.
type StagingStore struct {
	db *sql.DB
}

// OpenStaging opens (and if needed creates) the staging database at path.
func OpenStaging(path string) (*StagingStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staging store: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS staged_spot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL,
			staged_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create staging table: %w", err)
	}

	return &StagingStore{db: db}, nil
}

// Close releases the underlying database.
func (s *StagingStore) Close() error {
	return s.db.Close()
}

// Set stores the payload in the single slot, replacing any previous one.
func (s *StagingStore) Set(ctx context.Context, payload SpotPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode staged payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO staged_spot (id, payload, staged_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, staged_at = excluded.staged_at
	`, string(data))
	if err != nil {
		return fmt.Errorf("failed to stage payload: %w", err)
	}
	return nil
}

// Get returns the staged payload, or nil when the slot is empty.
func (s *StagingStore) Get(ctx context.Context) (*SpotPayload, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM staged_spot WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read staged payload: %w", err)
	}

	var payload SpotPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode staged payload: %w", err)
	}
	return &payload, nil
}

// Clear empties the slot. Clearing an empty slot is not an error.
func (s *StagingStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM staged_spot WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear staged payload: %w", err)
	}
	return nil
}
