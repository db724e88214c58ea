package models

import (
	"fmt"
	"strings"
)

// Team is one of the fixed labels that split a group's players
type Team string

const (
	TeamA Team = "Time A"
	TeamB Team = "Time B"
)

// Teams returns every team label in display order
func Teams() []Team {
	return []Team{TeamA, TeamB}
}

// Valid reports whether t is one of the fixed labels
func (t Team) Valid() bool {
	switch t {
	case TeamA, TeamB:
		return true
	}
	return false
}

func (t Team) String() string {
	return string(t)
}

// ParseTeam accepts a full label ("Time A") or its letter ("a", "B"),
// ignoring case and surrounding whitespace.
func ParseTeam(s string) (Team, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, team := range Teams() {
		label := strings.ToLower(string(team))
		if normalized == label || normalized == label[len(label)-1:] {
			return team, nil
		}
	}
	return "", fmt.Errorf("invalid team '%s' (must be: %s, %s)", s, TeamA, TeamB)
}
