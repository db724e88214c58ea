package doctor

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
)

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check stored data for consistency",
		Long: `Report players-lists whose group no longer exists. These can be left
behind when a group delete is interrupted. Nothing is changed; remove them
with: turmas player clear --group <name>

Examples:
  turmas doctor
  turmas doctor --json
`,
		RunE: runDoctor,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
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

	orphans, err := cliInstance.App.GroupService.FindOrphanedPlayerLists(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	if len(orphans) > 0 {
		slog.Warn("orphaned players-lists found", "groups", orphans)
	}

	if formatter.Quiet {
		formatter.Lines(orphans...)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"healthy":               len(orphans) == 0,
			"orphaned_player_lists": orphans,
		})
	}

	if len(orphans) == 0 {
		formatter.Printf("%s No problems found\n", styles.Check())
		return nil
	}

	formatter.Printf("%s %d players-list(s) without a group:\n", styles.Warn(), len(orphans))
	for _, group := range orphans {
		formatter.Printf("  %s\n", group)
	}
	formatter.Printf("%s\n", styles.SubtleStyle.Render("Remove with: turmas player clear --group <name>"))
	return nil
}
