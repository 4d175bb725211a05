package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"ds-burguer/db"
)

// PreferenceRepository persists key/value preferences in Postgres.
//
// Schema:
//
//	CREATE TABLE IF NOT EXISTS preferences (
//	    key   TEXT PRIMARY KEY,
//	    value TEXT NOT NULL
//	);
type PreferenceRepository struct{}

// NewPreferenceRepository creates a new PreferenceRepository
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

// Ensure PreferenceRepository implements PreferenceRepositoryInterface
var _ PreferenceRepositoryInterface = (*PreferenceRepository)(nil)

// Get reads a preference value. A missing row is not an error.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM preferences WHERE key = $1`
	err := db.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts a preference value.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := db.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}

// Delete removes a preference row. Deleting an absent key is not an error.
func (r *PreferenceRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM preferences WHERE key = $1`
	if _, err := db.DB.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}

// MemoryPreferenceRepository is the in-process fallback used when no database
// is configured. Values survive only for the lifetime of the process.
type MemoryPreferenceRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryPreferenceRepository creates an empty in-memory store.
func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{values: make(map[string]string)}
}

// Ensure MemoryPreferenceRepository implements PreferenceRepositoryInterface
var _ PreferenceRepositoryInterface = (*MemoryPreferenceRepository)(nil)

func (r *MemoryPreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	return value, ok, nil
}

func (r *MemoryPreferenceRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *MemoryPreferenceRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}
