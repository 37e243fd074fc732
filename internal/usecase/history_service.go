package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
)

type HistoryService struct {
	seasonRepo    season.Repository
	teamRepo      team.Repository
	footnoteYears map[int]bool
}

func NewHistoryService(seasonRepo season.Repository, teamRepo team.Repository, footnoteYears map[int]bool) *HistoryService {
	years := make(map[int]bool, len(footnoteYears))
	for year, marked := range footnoteYears {
		if marked {
			years[year] = true
		}
	}

	return &HistoryService{
		seasonRepo:    seasonRepo,
		teamRepo:      teamRepo,
		footnoteYears: years,
	}
}

func (s *HistoryService) ListHistory(ctx context.Context) ([]season.HistorySeason, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListHistory")
	defer span.End()

	seasons, directory, err := loadHistory(ctx, s.seasonRepo, s.teamRepo)
	if err != nil {
		return nil, err
	}

	return season.BuildHistory(seasons, directory, s.footnoteYears), nil
}

// FootnoteYears returns the marked years in ascending order.
func (s *HistoryService) FootnoteYears() []int {
	out := make([]int, 0, len(s.footnoteYears))
	for year := range s.footnoteYears {
		out = append(out, year)
	}
	sort.Ints(out)
	return out
}

func (s *HistoryService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}
