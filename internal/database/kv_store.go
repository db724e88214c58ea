package database

import (
	"context"
	"database/sql"
	"errors"
)

// KVStore is a Store backed by the kv table of a SQLite database
type KVStore struct {
	db *sql.DB
}

// NewKVStore wraps an initialized database (see InitDB)
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Get retrieves the value stored under key
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("get", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value stored under key
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

// Remove deletes key if present
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return unavailable("remove", key, err)
	}
	return nil
}

// ListKeys returns the keys starting with prefix.
// substr is used instead of LIKE, which is case-insensitive and treats % and _ as wildcards.
func (s *KVStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM kv
		WHERE substr(key, 1, length(?1)) = ?1
		ORDER BY key
	`, prefix)
	if err != nil {
		return nil, unavailable("list", prefix, err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, unavailable("list", prefix, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list", prefix, err)
	}

	return keys, nil
}
