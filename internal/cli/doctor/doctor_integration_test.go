package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/turmas/internal/models"
	"github.com/thenoetrevino/turmas/internal/testutil/cli"
)

func TestDoctor_Healthy(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestGroup(t, app, "Rocket")
	cli.AddTestPlayer(t, app, "Rocket", "Ana", models.TeamA)

	output, err := cli.ExecuteCLICommand(t, app, DoctorCmd(), []string{"--json"})
	require.NoError(t, err)

	result := cli.ParseJSON(t, output)
	assert.Equal(t, true, result["healthy"])
	assert.Empty(t, result["orphaned_player_lists"])

	output, err = cli.ExecuteCLICommand(t, app, DoctorCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No problems found")
}

func TestDoctor_ReportsOrphans(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestGroup(t, app, "Rocket")
	cli.WriteOrphanedPlayers(t, app, "Ghost", &models.Player{Name: "Ana", Team: models.TeamA})

	output, err := cli.ExecuteCLICommand(t, app, DoctorCmd(), []string{"--json"})
	require.NoError(t, err)

	result := cli.ParseJSON(t, output)
	assert.Equal(t, false, result["healthy"])
	assert.Equal(t, []interface{}{"Ghost"}, result["orphaned_player_lists"])

	output, err = cli.ExecuteCLICommand(t, app, DoctorCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "Ghost\n", output)
}
