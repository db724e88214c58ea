package database

import (
	"context"
	"errors"
	"fmt"
)

// ErrStorageUnavailable marks failures of the underlying store (disk full,
// permission denied, corrupted data). It is never a user mistake.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store is a string-keyed, string-valued persistent store.
// Set and Remove are atomic per key; there are no cross-key transactions.
type Store interface {
	// Get returns the value for key; ok is false when the key does not exist.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// ListKeys returns all keys starting with prefix, in ascending order.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// unavailable wraps err so that errors.Is(result, ErrStorageUnavailable) holds
func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrStorageUnavailable, op, key, err)
}
