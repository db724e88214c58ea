package database

import (
	"context"
	"fmt"
)

// GroupRepo reads and writes the group-name list.
// No validation or uniqueness checks here - just storage.
type GroupRepo struct {
	store Store
}

// GetGroupNames returns the stored group names in insertion order.
// An absent key means no groups yet.
func (r *GroupRepo) GetGroupNames(ctx context.Context) ([]string, error) {
	value, ok, err := r.store.Get(ctx, GroupsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get group names: %w", err)
	}
	if !ok {
		return []string{}, nil
	}
	return decodeGroupNames(value)
}

// SaveGroupNames replaces the whole group-name list
func (r *GroupRepo) SaveGroupNames(ctx context.Context, names []string) error {
	value, err := encodeGroupNames(names)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, GroupsKey, value); err != nil {
		return fmt.Errorf("failed to save group names: %w", err)
	}
	return nil
}
