package player

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
	"github.com/thenoetrevino/turmas/internal/models"
)

// ListCmd returns the player list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the players of a group",
		Long: `List the players of a group in the order they were added,
optionally only those of one team. Per-team totals are always shown.

Examples:
  turmas player list --group="Rocket"

  # Only team A
  turmas player list --group="Rocket" --team=a

  # JSON output for agents
  turmas player list --group="Rocket" --json
`,
		RunE: runList,
	}

	cmd.Flags().String("group", "", "Group name (required)")
	if err := cmd.MarkFlagRequired("group"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("team", "", "Only list players of this team (A or B)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	group, _ := cmd.Flags().GetString("group")
	teamFlag, _ := cmd.Flags().GetString("team")
	formatter := cli.NewFormatter(cmd)

	var team models.Team
	if cmd.Flags().Changed("team") {
		var err error
		if team, err = parseTeamFlag(teamFlag); err != nil {
			return formatter.Fail(err)
		}
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

	group = strings.TrimSpace(group)
	exists, err := cliInstance.App.GroupService.GroupExists(ctx, group)
	if err != nil {
		return formatter.Fail(err)
	}
	if !exists {
		return formatter.Fail(models.NewDomainError(models.KindGroupNotFound, "group '%s' not found", group))
	}

	var players []*models.Player
	if team != "" {
		players, err = cliInstance.App.PlayerService.ListPlayersByGroupAndTeam(ctx, group, team)
	} else {
		players, err = cliInstance.App.PlayerService.ListPlayersByGroup(ctx, group)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, p := range players {
			formatter.Lines(p.Name)
		}
		return nil
	}

	counts, err := cliInstance.App.PlayerService.CountPlayersByTeam(ctx, group)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		fields := map[string]interface{}{
			"group":   group,
			"players": players,
			"counts":  counts,
		}
		if team != "" {
			fields["team"] = team
		}
		return formatter.Success(fields)
	}

	title := group
	if team != "" {
		title = fmt.Sprintf("%s - %s", group, team)
	}
	formatter.Printf("%s\n", styles.TitleStyle.Render(title))

	if len(players) == 0 {
		formatter.Printf("  No players yet\n")
	}
	for _, p := range players {
		formatter.Printf("  %s\n", styles.RenderPlayer(p))
	}

	totals := make([]string, 0, len(counts))
	for _, t := range models.Teams() {
		totals = append(totals, fmt.Sprintf("%s: %d", t, counts[t]))
	}
	formatter.Printf("%s\n", styles.SubtleStyle.Render(strings.Join(totals, " · ")))
	return nil
}
