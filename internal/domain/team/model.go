package team

import (
	"fmt"
	"strings"
)

// Team is a league member franchise, stable across seasons and league types.
type Team struct {
	ID            string
	Owner         string
	DynastyName   string
	RedraftName   string
	DynastyActive bool
	RedraftActive bool
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Owner) == "" {
		return fmt.Errorf("team owner is required")
	}

	return nil
}

// IsActive reports whether the team still plays in at least one league type.
func (t Team) IsActive() bool {
	return t.DynastyActive || t.RedraftActive
}

// Directory is an id-keyed lookup over the team list, built once.
type Directory map[string]Team

func NewDirectory(teams []Team) Directory {
	out := make(Directory, len(teams))
	for _, item := range teams {
		out[item.ID] = item
	}
	return out
}

// Owner returns the owner name for teamID, or "" when the id is unknown.
func (d Directory) Owner(teamID string) string {
	return d[teamID].Owner
}
