package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/turmas/internal/config/colors"
	"github.com/thenoetrevino/turmas/internal/models"
)

var (
	// Text styles
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style
	NormalStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	teamStyles map[models.Team]lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	NormalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Warning))

	teamStyles = map[models.Team]lipgloss.Style{
		models.TeamA: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.TeamA)),
		models.TeamB: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.TeamB)),
	}
}

// Check renders the success mark
func Check() string {
	return SuccessStyle.Render("✓")
}

// Warn renders the warning mark
func Warn() string {
	return WarningStyle.Render("⚠")
}

// RenderTeam renders a team label in its team color
func RenderTeam(team models.Team) string {
	style, ok := teamStyles[team]
	if !ok {
		return NormalStyle.Render(team.String())
	}
	return style.Render(team.String())
}

// RenderPlayer renders "• name  Team" for player lists
func RenderPlayer(p *models.Player) string {
	return SubtleStyle.Render("•") + " " + NormalStyle.Render(p.Name) + "  " + RenderTeam(p.Team)
}
