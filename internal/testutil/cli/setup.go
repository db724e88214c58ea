package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/turmas/internal/app"
	"github.com/thenoetrevino/turmas/internal/models"
	playerservice "github.com/thenoetrevino/turmas/internal/services/player"
	"github.com/thenoetrevino/turmas/internal/testutil"
)

// SetupCLITest creates an App over an in-memory SQLite store.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return app.New(testutil.SetupTestStore(t))
}

// SetupFailingCLITest is SetupCLITest with a failure-injecting store
func SetupFailingCLITest(t *testing.T) (*app.App, *testutil.FailingStore) {
	t.Helper()
	store := testutil.NewFailingStore(testutil.SetupTestStore(t))
	return app.New(store), store
}

// CreateTestGroup creates a group directly through the service
func CreateTestGroup(t *testing.T, testApp *app.App, name string) {
	t.Helper()
	if _, err := testApp.GroupService.CreateGroup(context.Background(), name); err != nil {
		t.Fatalf("Failed to create test group %q: %v", name, err)
	}
}

// AddTestPlayer adds a player directly through the service
func AddTestPlayer(t *testing.T, testApp *app.App, group, name string, team models.Team) {
	t.Helper()
	_, err := testApp.PlayerService.AddPlayer(context.Background(), playerservice.AddPlayerRequest{
		Name:  name,
		Team:  team,
		Group: group,
	})
	if err != nil {
		t.Fatalf("Failed to add test player %q to %q: %v", name, group, err)
	}
}

// WriteOrphanedPlayers stores a players-list for a group that has no group
// record, the state an interrupted group delete can leave behind
func WriteOrphanedPlayers(t *testing.T, testApp *app.App, group string, players ...*models.Player) {
	t.Helper()
	if err := testApp.Repo().SavePlayers(context.Background(), group, players); err != nil {
		t.Fatalf("Failed to write orphaned players: %v", err)
	}
}
