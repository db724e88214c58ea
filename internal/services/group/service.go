package group

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/turmas/internal/database"
	"github.com/thenoetrevino/turmas/internal/models"
)

// Service defines all group-related business operations
type Service interface {
	// Read operations
	ListGroups(ctx context.Context) ([]string, error)
	GroupExists(ctx context.Context, name string) (bool, error)
	FindOrphanedPlayerLists(ctx context.Context) ([]string, error)

	// Write operations
	CreateGroup(ctx context.Context, name string) (*models.Group, error)
	RemoveGroup(ctx context.Context, name string) error
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new group service. A nil logger falls back to slog.Default.
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListGroups returns the group names in creation order
func (s *service) ListGroups(ctx context.Context) ([]string, error) {
	names, err := s.repo.GetGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return names, nil
}

// GroupExists reports whether a group with that exact (trimmed) name exists
func (s *service) GroupExists(ctx context.Context, name string) (bool, error) {
	name, err := models.NormalizeName("group", name)
	if err != nil {
		return false, err
	}

	names, err := s.repo.GetGroupNames(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get groups: %w", err)
	}
	return slices.Contains(names, name), nil
}

// CreateGroup appends a new group to the group list
func (s *service) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	name, err := models.NormalizeName("group", name)
	if err != nil {
		return nil, err
	}

	names, err := s.repo.GetGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	if slices.Contains(names, name) {
		return nil, models.NewDomainError(models.KindDuplicateGroup, "group '%s' already exists", name)
	}

	if err := s.repo.SaveGroupNames(ctx, append(names, name)); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.logger.Debug("group created", "group", name)
	return &models.Group{Name: name}, nil
}

// RemoveGroup deletes the group and its players.
//
// The players-list goes first: if the second write fails the store is left
// with an empty group, never with players of a group that no longer exists.
// Either way the caller gets ErrStorageUnavailable and should retry.
func (s *service) RemoveGroup(ctx context.Context, name string) error {
	name, err := models.NormalizeName("group", name)
	if err != nil {
		return err
	}

	names, err := s.repo.GetGroupNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to get groups: %w", err)
	}

	idx := slices.Index(names, name)
	if idx < 0 {
		return models.NewDomainError(models.KindGroupNotFound, "group '%s' not found", name)
	}

	if err := s.repo.DeletePlayersByGroup(ctx, name); err != nil {
		return fmt.Errorf("failed to remove players of group '%s': %w", name, err)
	}

	remaining := slices.Delete(slices.Clone(names), idx, idx+1)
	if err := s.repo.SaveGroupNames(ctx, remaining); err != nil {
		return fmt.Errorf("%w: group '%s' was only partially removed (players deleted), retry: %w",
			database.ErrStorageUnavailable, name, err)
	}

	s.logger.Debug("group removed", "group", name)
	return nil
}

// FindOrphanedPlayerLists returns groups that own a players-list but are
// missing from the group list. Nothing is repaired.
func (s *service) FindOrphanedPlayerLists(ctx context.Context) ([]string, error) {
	names, err := s.repo.GetGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	withPlayers, err := s.repo.GetGroupsWithPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get player lists: %w", err)
	}

	orphans := []string{}
	for _, group := range withPlayers {
		if !slices.Contains(names, group) {
			orphans = append(orphans, group)
		}
	}
	return orphans, nil
}
