package database

import (
	"context"
	"database/sql"
	"testing"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// storeFactories lists every Store implementation so contract tests run
// against each of them
func storeFactories() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"sqlite": func(t *testing.T) Store {
			return NewKVStore(setupTestDB(t))
		},
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
	}
}
