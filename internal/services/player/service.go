package player

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/turmas/internal/database"
	"github.com/thenoetrevino/turmas/internal/models"
)

// Service defines all player-related business operations
type Service interface {
	// Read operations
	ListPlayersByGroup(ctx context.Context, group string) ([]*models.Player, error)
	ListPlayersByGroupAndTeam(ctx context.Context, group string, team models.Team) ([]*models.Player, error)
	CountPlayersByTeam(ctx context.Context, group string) (map[models.Team]int, error)

	// Write operations
	AddPlayer(ctx context.Context, req AddPlayerRequest) (*models.Player, error)
	RemovePlayer(ctx context.Context, name, group string) error
	RemoveAllPlayersByGroup(ctx context.Context, group string) error
}

// AddPlayerRequest encapsulates data for adding a player to a group
type AddPlayerRequest struct {
	Name  string
	Team  models.Team
	Group string
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new player service. A nil logger falls back to slog.Default.
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListPlayersByGroup returns the players of group in insertion order
func (s *service) ListPlayersByGroup(ctx context.Context, group string) ([]*models.Player, error) {
	group, err := models.NormalizeName("group", group)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.GetPlayersByGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// ListPlayersByGroupAndTeam returns the players of group on team, keeping storage order
func (s *service) ListPlayersByGroupAndTeam(ctx context.Context, group string, team models.Team) ([]*models.Player, error) {
	if !team.Valid() {
		return nil, invalidTeam(team)
	}

	players, err := s.ListPlayersByGroup(ctx, group)
	if err != nil {
		return nil, err
	}

	filtered := []*models.Player{}
	for _, p := range players {
		if p.Team == team {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// CountPlayersByTeam returns how many players each team has; every team is present
func (s *service) CountPlayersByTeam(ctx context.Context, group string) (map[models.Team]int, error) {
	players, err := s.ListPlayersByGroup(ctx, group)
	if err != nil {
		return nil, err
	}

	counts := make(map[models.Team]int, len(models.Teams()))
	for _, team := range models.Teams() {
		counts[team] = 0
	}
	for _, p := range players {
		counts[p.Team]++
	}
	return counts, nil
}

// AddPlayer appends a player to an existing group
func (s *service) AddPlayer(ctx context.Context, req AddPlayerRequest) (*models.Player, error) {
	if err := s.validateAddPlayer(&req); err != nil {
		return nil, err
	}

	groups, err := s.repo.GetGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	if !slices.Contains(groups, req.Group) {
		return nil, models.NewDomainError(models.KindGroupNotFound, "group '%s' not found", req.Group)
	}

	players, err := s.repo.GetPlayersByGroup(ctx, req.Group)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	if indexOf(players, req.Name) >= 0 {
		return nil, models.NewDomainError(models.KindDuplicatePlayer,
			"player '%s' already exists in group '%s'", req.Name, req.Group)
	}

	player := &models.Player{Name: req.Name, Team: req.Team}
	if err := s.repo.SavePlayers(ctx, req.Group, append(players, player)); err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	s.logger.Debug("player added", "group", req.Group, "player", req.Name, "team", req.Team)
	return player, nil
}

// RemovePlayer removes the player called name from group
func (s *service) RemovePlayer(ctx context.Context, name, group string) error {
	name, err := models.NormalizeName("player", name)
	if err != nil {
		return err
	}
	group, err = models.NormalizeName("group", group)
	if err != nil {
		return err
	}

	players, err := s.repo.GetPlayersByGroup(ctx, group)
	if err != nil {
		return fmt.Errorf("failed to get players: %w", err)
	}

	idx := indexOf(players, name)
	if idx < 0 {
		return models.NewDomainError(models.KindPlayerNotFound,
			"player '%s' not found in group '%s'", name, group)
	}

	remaining := slices.Delete(slices.Clone(players), idx, idx+1)
	if err := s.repo.SavePlayers(ctx, group, remaining); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	s.logger.Debug("player removed", "group", group, "player", name)
	return nil
}

// RemoveAllPlayersByGroup drops the whole players-list of group. Idempotent.
func (s *service) RemoveAllPlayersByGroup(ctx context.Context, group string) error {
	group, err := models.NormalizeName("group", group)
	if err != nil {
		return err
	}

	if err := s.repo.DeletePlayersByGroup(ctx, group); err != nil {
		return fmt.Errorf("failed to remove players: %w", err)
	}

	s.logger.Debug("players cleared", "group", group)
	return nil
}

// validateAddPlayer normalizes names in place and checks the team
func (s *service) validateAddPlayer(req *AddPlayerRequest) error {
	name, err := models.NormalizeName("player", req.Name)
	if err != nil {
		return err
	}
	group, err := models.NormalizeName("group", req.Group)
	if err != nil {
		return err
	}
	if !req.Team.Valid() {
		return invalidTeam(req.Team)
	}

	req.Name = name
	req.Group = group
	return nil
}

func invalidTeam(team models.Team) error {
	return models.NewDomainError(models.KindInvalidTeam,
		"invalid team '%s' (must be: %s, %s)", team, models.TeamA, models.TeamB)
}

func indexOf(players []*models.Player, name string) int {
	return slices.IndexFunc(players, func(p *models.Player) bool {
		return p.Name == name
	})
}
