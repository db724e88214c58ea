package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli"
	"github.com/thenoetrevino/turmas/internal/cli/doctor"
	"github.com/thenoetrevino/turmas/internal/cli/group"
	"github.com/thenoetrevino/turmas/internal/cli/player"
)

// NewRootCmd builds the turmas command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "turmas",
		Short: "Turmas - practice groups and their two teams",
		Long: `Turmas keeps a list of practice groups and, for each group, its players
split into two teams (Time A and Time B). Everything is stored locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if memory, _ := cmd.Flags().GetBool("memory"); memory {
				cmd.SetContext(cli.WithMemoryStore(cmd.Context()))
			}
		},
	}

	rootCmd.PersistentFlags().Bool("memory", false, "Use a throwaway in-memory store (nothing is saved)")

	rootCmd.AddCommand(group.GroupCmd())
	rootCmd.AddCommand(player.PlayerCmd())
	rootCmd.AddCommand(doctor.DoctorCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	code := cli.ExitCode(err)
	if code == cli.ExitUsage {
		// Command errors were already reported; these come from cobra
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'turmas --help' for usage.")
	}
	return code
}
