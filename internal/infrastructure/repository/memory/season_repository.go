package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-history/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons []season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	return &SeasonRepository{seasons: cloneSeasons(seasons)}
}

// List returns a deep copy so callers can sort freely.
func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSeasons(r.seasons), nil
}

func cloneSeasons(items []season.Season) []season.Season {
	out := make([]season.Season, 0, len(items))
	for _, item := range items {
		results := make([]season.Result, len(item.Results))
		copy(results, item.Results)
		item.Results = results
		out = append(out, item)
	}
	return out
}
