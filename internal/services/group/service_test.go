package group

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/turmas/internal/database"
	"github.com/thenoetrevino/turmas/internal/models"
	"github.com/thenoetrevino/turmas/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	repo := database.NewRepository(testutil.SetupTestStore(t))
	return NewService(repo, nil), repo
}

func addPlayers(t *testing.T, repo *database.Repository, group string, names ...string) {
	t.Helper()
	players := make([]*models.Player, len(names))
	for i, name := range names {
		players[i] = &models.Player{Name: name, Team: models.TeamA}
	}
	require.NoError(t, repo.SavePlayers(context.Background(), group, players))
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateGroup(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, "  Rocket  ")
	require.NoError(t, err)
	assert.Equal(t, "Rocket", group.Name)

	names, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rocket"}, names)
}

func TestCreateGroup_Duplicate(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "Rocket")
	require.NoError(t, err)

	_, err = svc.CreateGroup(ctx, " Rocket")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrDuplicateGroup))

	// Case-sensitive: a different spelling is a different group
	_, err = svc.CreateGroup(ctx, "rocket")
	require.NoError(t, err)

	names, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rocket", "rocket"}, names)
}

func TestCreateGroup_UniqueAfterAnySequence(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	ops := []struct {
		create bool
		name   string
	}{
		{true, "A"}, {true, "B"}, {true, "A"}, {false, "A"},
		{true, "A"}, {true, "C"}, {true, "B"}, {false, "C"}, {true, "C"},
	}
	for _, op := range ops {
		if op.create {
			_, _ = svc.CreateGroup(ctx, op.name)
		} else {
			_ = svc.RemoveGroup(ctx, op.name)
		}

		names, err := svc.ListGroups(ctx)
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, n := range names {
			assert.False(t, seen[n], "group %q listed twice", n)
			seen[n] = true
		}
	}
}

func TestCreateGroup_InvalidName(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", strings.Repeat("x", models.MaxNameLength+1)},
		{"invalid utf-8", "Ro\xffcket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGroup(context.Background(), tt.input)
			assert.ErrorIs(t, err, models.ErrInvalidName)
		})
	}
}

func TestCreateGroup_InvalidUTF8NeverStored(t *testing.T) {
	t.Parallel()
	svc, repo := setupService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.CreateGroup(ctx, "Ro\xffcket")
		assert.ErrorIs(t, err, models.ErrInvalidName)
	}

	names, err := repo.GetGroupNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	err = svc.RemoveGroup(ctx, "Ro\xffcket")
	assert.ErrorIs(t, err, models.ErrInvalidName)
}

func TestListGroups_Empty(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	names, err := svc.ListGroups(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestRemoveGroup_Cascades(t *testing.T) {
	t.Parallel()
	svc, repo := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "X")
	require.NoError(t, err)
	_, err = svc.CreateGroup(ctx, "Y")
	require.NoError(t, err)
	addPlayers(t, repo, "X", "p1", "p2")
	addPlayers(t, repo, "Y", "p3")

	require.NoError(t, svc.RemoveGroup(ctx, "X"))

	names, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, names)

	players, err := repo.GetPlayersByGroup(ctx, "X")
	require.NoError(t, err)
	assert.Empty(t, players)

	players, err = repo.GetPlayersByGroup(ctx, "Y")
	require.NoError(t, err)
	assert.Len(t, players, 1)

	orphans, err := svc.FindOrphanedPlayerLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestRemoveGroup_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "Rocket")
	require.NoError(t, err)

	err = svc.RemoveGroup(ctx, "Ghost")
	assert.ErrorIs(t, err, models.ErrGroupNotFound)

	names, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rocket"}, names)
}

func TestRemoveGroup_PartialFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := testutil.NewFailingStore(database.NewMemoryStore())
	repo := database.NewRepository(store)
	svc := NewService(repo, nil)

	_, err := svc.CreateGroup(ctx, "X")
	require.NoError(t, err)
	addPlayers(t, repo, "X", "p1")

	store.FailOn("set", database.GroupsKey)
	err = svc.RemoveGroup(ctx, "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrStorageUnavailable)
	assert.False(t, models.IsDomainError(err))
	assert.Contains(t, err.Error(), "partially removed")

	// Fail-safe order: the group survives empty, no orphaned players-list
	store.Reset()
	names, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, names)

	players, err := repo.GetPlayersByGroup(ctx, "X")
	require.NoError(t, err)
	assert.Empty(t, players)

	// Retry completes the removal
	require.NoError(t, svc.RemoveGroup(ctx, "X"))
	names, err = svc.ListGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRemoveGroup_PlayersRemovalFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := testutil.NewFailingStore(database.NewMemoryStore())
	repo := database.NewRepository(store)
	svc := NewService(repo, nil)

	_, err := svc.CreateGroup(ctx, "X")
	require.NoError(t, err)

	store.FailOn("remove", database.PlayersKey("X"))
	err = svc.RemoveGroup(ctx, "X")
	assert.ErrorIs(t, err, database.ErrStorageUnavailable)

	store.Reset()
	names, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, names)
}

func TestCreateGroup_StorageFailure(t *testing.T) {
	t.Parallel()
	store := testutil.NewFailingStore(database.NewMemoryStore())
	svc := NewService(database.NewRepository(store), nil)

	store.FailOn("get", database.GroupsKey)
	_, err := svc.CreateGroup(context.Background(), "Rocket")
	assert.ErrorIs(t, err, database.ErrStorageUnavailable)
	assert.ErrorIs(t, err, testutil.ErrInjected)
}

func TestGroupExists(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "Rocket")
	require.NoError(t, err)

	ok, err := svc.GroupExists(ctx, " Rocket ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.GroupExists(ctx, "Comets")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindOrphanedPlayerLists(t *testing.T) {
	t.Parallel()
	svc, repo := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "Rocket")
	require.NoError(t, err)
	addPlayers(t, repo, "Rocket", "Rafa")
	// Written behind the service's back
	addPlayers(t, repo, "Ghost", "Boo")

	orphans, err := svc.FindOrphanedPlayerLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ghost"}, orphans)
}
