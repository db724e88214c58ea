package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/turmas/internal/models"
)

// PlayerRepo reads and writes one players-list per group
type PlayerRepo struct {
	store Store
}

// GetPlayersByGroup returns the players-list of group; empty when the key
// does not exist.
func (r *PlayerRepo) GetPlayersByGroup(ctx context.Context, group string) ([]*models.Player, error) {
	value, ok, err := r.store.Get(ctx, PlayersKey(group))
	if err != nil {
		return nil, fmt.Errorf("failed to get players for group '%s': %w", group, err)
	}
	if !ok {
		return []*models.Player{}, nil
	}
	return decodePlayers(value)
}

// SavePlayers replaces the whole players-list of group
func (r *PlayerRepo) SavePlayers(ctx context.Context, group string, players []*models.Player) error {
	value, err := encodePlayers(players)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, PlayersKey(group), value); err != nil {
		return fmt.Errorf("failed to save players for group '%s': %w", group, err)
	}
	return nil
}

// DeletePlayersByGroup removes the players-list key of group. Idempotent.
func (r *PlayerRepo) DeletePlayersByGroup(ctx context.Context, group string) error {
	if err := r.store.Remove(ctx, PlayersKey(group)); err != nil {
		return fmt.Errorf("failed to delete players for group '%s': %w", group, err)
	}
	return nil
}

// GetGroupsWithPlayers returns the group names that own a players-list key
func (r *PlayerRepo) GetGroupsWithPlayers(ctx context.Context) ([]string, error) {
	keys, err := r.store.ListKeys(ctx, PlayersKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list players keys: %w", err)
	}

	groups := make([]string, 0, len(keys))
	for _, key := range keys {
		if group, ok := GroupFromPlayersKey(key); ok {
			groups = append(groups, group)
		}
	}
	return groups, nil
}
