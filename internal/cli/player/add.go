package player

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
	playerservice "github.com/thenoetrevino/turmas/internal/services/player"
)

// AddCmd returns the player add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to a group",
		Long: `Add a player to an existing group on one of the two teams.
Player names are unique within a group.

Team accepts the full label ("Time A") or just its letter (a, B).

Examples:
  turmas player add --group="Rocket" --name="Ana" --team=A

  # JSON output for agents
  turmas player add --group="Rocket" --name="Ana" --team="Time B" --json
`,
		RunE: runAdd,
	}

	cmd.Flags().String("group", "", "Group name (required)")
	if err := cmd.MarkFlagRequired("group"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("name", "", "Player name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("team", "", "Team: A or B (required)")
	if err := cmd.MarkFlagRequired("team"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	group, _ := cmd.Flags().GetString("group")
	name, _ := cmd.Flags().GetString("name")
	teamFlag, _ := cmd.Flags().GetString("team")
	formatter := cli.NewFormatter(cmd)
	group = strings.TrimSpace(group)

	team, err := parseTeamFlag(teamFlag)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	player, err := cliInstance.App.PlayerService.AddPlayer(ctx, playerservice.AddPlayerRequest{
		Name:  name,
		Team:  team,
		Group: group,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Lines(player.Name)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"group":  group,
			"player": player,
		})
	}

	formatter.Printf("%s Player '%s' added to '%s' (%s)\n", styles.Check(), player.Name, group, styles.RenderTeam(player.Team))
	return nil
}
