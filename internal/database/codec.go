package database

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/turmas/internal/models"
)

// encodeGroupNames serializes names; nil encodes as an empty array
func encodeGroupNames(names []string) (string, error) {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("failed to encode group names: %w", err)
	}
	return string(data), nil
}

func decodeGroupNames(value string) ([]string, error) {
	var names []string
	if err := json.Unmarshal([]byte(value), &names); err != nil {
		return nil, fmt.Errorf("%w: corrupted group list: %w", ErrStorageUnavailable, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func encodePlayers(players []*models.Player) (string, error) {
	stored := make([]models.Player, 0, len(players))
	for _, p := range players {
		stored = append(stored, *p)
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("failed to encode players: %w", err)
	}
	return string(data), nil
}

// decodePlayers rejects lists holding null entries, nameless players or
// teams outside the fixed set
func decodePlayers(value string) ([]*models.Player, error) {
	var players []*models.Player
	if err := json.Unmarshal([]byte(value), &players); err != nil {
		return nil, fmt.Errorf("%w: corrupted players list: %w", ErrStorageUnavailable, err)
	}
	for i, p := range players {
		switch {
		case p == nil:
			return nil, fmt.Errorf("%w: corrupted players list: entry %d is null", ErrStorageUnavailable, i)
		case p.Name == "":
			return nil, fmt.Errorf("%w: corrupted players list: entry %d has no name", ErrStorageUnavailable, i)
		case !p.Team.Valid():
			return nil, fmt.Errorf("%w: corrupted players list: entry %d has invalid team %q", ErrStorageUnavailable, i, p.Team)
		}
	}
	if players == nil {
		players = []*models.Player{}
	}
	return players, nil
}
