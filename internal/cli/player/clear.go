package player

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
)

// ClearCmd returns the player clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every player of a group",
		Long: `Remove every player stored for a group name. Safe to repeat, and also
removes players-lists left behind without a group (see: turmas doctor).

Examples:
  turmas player clear --group="Rocket"
`,
		RunE: runClear,
	}

	cmd.Flags().String("group", "", "Group name (required)")
	if err := cmd.MarkFlagRequired("group"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	group, _ := cmd.Flags().GetString("group")
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

	if err := cliInstance.App.PlayerService.RemoveAllPlayersByGroup(ctx, group); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"group": group,
		})
	}

	formatter.Printf("%s All players of '%s' removed\n", styles.Check(), group)
	return nil
}
