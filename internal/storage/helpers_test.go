// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Creates throwaway stores in temp directories, seeded or empty.
package storage

import (
	"path/filepath"
	"testing"

	"liftlog/internal/models"
)

// setupTestStore creates a store over an empty database (no seed data), so
// ids in tests start from 1.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "liftlog.db")
	store := Open(dbPath, WithoutSeed())
	t.Cleanup(func() { _ = store.Close() })

	return store
}

// setupSeededStore creates a store with the bundled catalog and premade
// routines loaded, as a real first run would.
func setupSeededStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "liftlog.db")
	store := Open(dbPath)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

// countRows runs a COUNT(*) against the store's live connection.
func countRows(t *testing.T, store *Store, query string, args ...any) int {
	t.Helper()

	db, err := store.handle.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return count
}

// benchSets is a convenient two-set plan used across tests.
var benchSets = []models.Set{
	{SetNumber: 1, Reps: 10, Weight: 135},
	{SetNumber: 2, Reps: 8, Weight: 145},
}
