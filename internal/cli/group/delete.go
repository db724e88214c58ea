package group

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
	"github.com/thenoetrevino/turmas/internal/models"
)

// DeleteCmd returns the group delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a group and all of its players",
		Long: `Delete a group by name (requires confirmation unless --force, --json or --quiet).

Warning: Deleting a group also deletes every player in it.

Examples:
  # Delete with confirmation
  turmas group delete --name="Rocket"

  # Skip confirmation
  turmas group delete --name="Rocket" --force
`,
		RunE: runDelete,
	}

	cmd.Flags().String("name", "", "Group name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	force, _ := cmd.Flags().GetBool("force")
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

	name = strings.TrimSpace(name)

	// Ask for confirmation unless force or machine-readable output
	if !force && !formatter.Quiet && !formatter.JSON {
		exists, err := cliInstance.App.GroupService.GroupExists(ctx, name)
		if err != nil {
			return formatter.Fail(err)
		}
		if !exists {
			return formatter.Fail(models.NewDomainError(models.KindGroupNotFound, "group '%s' not found", name))
		}

		players, err := cliInstance.App.PlayerService.ListPlayersByGroup(ctx, name)
		if err != nil {
			return formatter.Fail(err)
		}

		formatter.Printf("%s Delete group '%s' and its %d player(s)? (y/N): ", styles.Warn(), name, len(players))
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			slog.Debug("Error reading user input", "error", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := cliInstance.App.GroupService.RemoveGroup(ctx, name); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"group": name,
		})
	}

	formatter.Printf("%s Group '%s' deleted\n", styles.Check(), name)
	return nil
}
