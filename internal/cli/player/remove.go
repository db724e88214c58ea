package player

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
)

// RemoveCmd returns the player remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a player from a group",
		Long: `Remove one player from a group by name.

Examples:
  turmas player remove --group="Rocket" --name="Ana"
`,
		RunE: runRemove,
	}

	cmd.Flags().String("group", "", "Group name (required)")
	if err := cmd.MarkFlagRequired("group"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("name", "", "Player name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	group, _ := cmd.Flags().GetString("group")
	name, _ := cmd.Flags().GetString("name")
	formatter := cli.NewFormatter(cmd)
	group = strings.TrimSpace(group)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if err := cliInstance.App.PlayerService.RemovePlayer(ctx, name, group); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"group":  group,
			"player": name,
		})
	}

	formatter.Printf("%s Player '%s' removed from '%s'\n", styles.Check(), name, group)
	return nil
}
