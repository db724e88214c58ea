package database

import (
	"context"

	"github.com/thenoetrevino/turmas/internal/models"
)

// GroupReader defines read operations for groups.
type GroupReader interface {
	GetGroupNames(ctx context.Context) ([]string, error)
}

// GroupWriter defines write operations for groups.
type GroupWriter interface {
	SaveGroupNames(ctx context.Context, names []string) error
}

// GroupRepository combines all group-related operations.
type GroupRepository interface {
	GroupReader
	GroupWriter
}

// PlayerReader defines read operations for players.
type PlayerReader interface {
	GetPlayersByGroup(ctx context.Context, group string) ([]*models.Player, error)
	GetGroupsWithPlayers(ctx context.Context) ([]string, error)
}

// PlayerWriter defines write operations for players.
type PlayerWriter interface {
	SavePlayers(ctx context.Context, group string, players []*models.Player) error
	DeletePlayersByGroup(ctx context.Context, group string) error
}

// PlayerRepository combines all player-related operations.
type PlayerRepository interface {
	PlayerReader
	PlayerWriter
}

// DataStore is everything the services need from storage.
// Consumers can depend on the smaller interfaces above instead.
type DataStore interface {
	GroupRepository
	PlayerRepository
}
