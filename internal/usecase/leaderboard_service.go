package usecase

import (
	"context"

	"github.com/riskibarqy/league-history/internal/domain/leaderboard"
	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/riskibarqy/league-history/internal/platform/cache"
)

const leaderboardCacheKey = "leaderboards"

type LeaderboardService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	cache      *cache.Store[[]leaderboard.Board]
}

// NewLeaderboardService builds the service. boardCache may be nil.
func NewLeaderboardService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	boardCache *cache.Store[[]leaderboard.Board],
) *LeaderboardService {
	return &LeaderboardService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		cache:      boardCache,
	}
}

func (s *LeaderboardService) ListBoards(ctx context.Context) ([]leaderboard.Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.ListBoards")
	defer span.End()

	if s.cache == nil {
		return s.buildBoards(ctx)
	}
	return s.cache.GetOrLoad(ctx, leaderboardCacheKey, s.buildBoards)
}

func (s *LeaderboardService) buildBoards(ctx context.Context) ([]leaderboard.Board, error) {
	seasons, directory, err := loadHistory(ctx, s.seasonRepo, s.teamRepo)
	if err != nil {
		return nil, err
	}

	return leaderboard.Build(seasons, directory), nil
}
