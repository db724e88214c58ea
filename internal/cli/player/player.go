package player

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/models"
)

// PlayerCmd returns the player parent command
func PlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the players of a group",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// parseTeamFlag turns a --team value into a team, reporting INVALID_TEAM
func parseTeamFlag(value string) (models.Team, error) {
	team, err := models.ParseTeam(value)
	if err != nil {
		return "", models.NewDomainError(models.KindInvalidTeam, "%s", err.Error())
	}
	return team, nil
}
