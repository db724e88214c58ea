package group

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
	"github.com/thenoetrevino/turmas/internal/models"
)

// ListCmd returns the group list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		Long: `List all groups in creation order, with their players per team.

Examples:
  # Human-readable list
  turmas group list

  # JSON output for agents
  turmas group list --json

  # Quiet mode (one name per line)
  turmas group list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type groupSummary struct {
	Name    string              `json:"name"`
	Players int                 `json:"players"`
	Teams   map[models.Team]int `json:"teams"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	names, err := cliInstance.App.GroupService.ListGroups(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Lines(names...)
		return nil
	}

	summaries := make([]groupSummary, 0, len(names))
	for _, name := range names {
		counts, err := cliInstance.App.PlayerService.CountPlayersByTeam(ctx, name)
		if err != nil {
			return formatter.Fail(err)
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		summaries = append(summaries, groupSummary{Name: name, Players: total, Teams: counts})
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"groups": summaries,
		})
	}

	if len(summaries) == 0 {
		formatter.Printf("No groups yet. Create one with: turmas group create --name <name>\n")
		return nil
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render(fmt.Sprintf("Groups (%d)", len(summaries))))
	for _, s := range summaries {
		formatter.Printf("  %s  %s\n", s.Name, styles.SubtleStyle.Render(teamCounts(s.Teams)))
	}
	return nil
}

// teamCounts renders "Time A: 2 · Time B: 1"
func teamCounts(counts map[models.Team]int) string {
	out := ""
	for i, team := range models.Teams() {
		if i > 0 {
			out += " · "
		}
		out += fmt.Sprintf("%s: %d", team, counts[team])
	}
	return out
}
