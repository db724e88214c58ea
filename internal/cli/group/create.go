package group

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
)

// CreateCmd returns the group create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new group",
		Long: `Create a new practice group. Group names are unique.

Examples:
  # Human-readable output
  turmas group create --name="Rocket"

  # JSON output for agents
  turmas group create --name="Rocket" --json

  # Quiet mode for bash capture
  GROUP=$(turmas group create --name="Rocket" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Group name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
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

	group, err := cliInstance.App.GroupService.CreateGroup(ctx, name)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Lines(group.Name)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"group": group,
		})
	}

	formatter.Printf("%s Group '%s' created\n", styles.Check(), group.Name)
	return nil
}
