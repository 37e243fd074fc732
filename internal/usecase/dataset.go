package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
)

// loadHistory reads the season list and the team directory every view needs.
func loadHistory(ctx context.Context, seasonRepo season.Repository, teamRepo team.Repository) ([]season.Season, team.Directory, error) {
	seasons, err := seasonRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list seasons: %w", err)
	}
	teams, err := teamRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list teams: %w", err)
	}

	return seasons, team.NewDirectory(teams), nil
}
