package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/riskibarqy/league-history/internal/domain/teamsummary"
	"github.com/riskibarqy/league-history/internal/platform/cache"
)

const (
	maxTeamSuggestions   = 3
	suggestionSimilarity = 0.5
)

type TeamSummaryService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	cache      *cache.Store[teamsummary.Page]
}

// NewTeamSummaryService builds the service. pageCache may be nil.
func NewTeamSummaryService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	pageCache *cache.Store[teamsummary.Page],
) *TeamSummaryService {
	return &TeamSummaryService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		cache:      pageCache,
	}
}

// GetPage returns the summary and chart for teamID. rawFilter accepts
// "", "both", "dynasty" or "redraft".
func (s *TeamSummaryService) GetPage(ctx context.Context, teamID, rawFilter string) (teamsummary.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSummaryService.GetPage")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return teamsummary.Page{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	filter, err := teamsummary.ParseFilter(rawFilter)
	if err != nil {
		return teamsummary.Page{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	member, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return teamsummary.Page{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return teamsummary.Page{}, s.notFound(ctx, teamID)
	}

	load := func(ctx context.Context) (teamsummary.Page, error) {
		seasons, err := s.seasonRepo.List(ctx)
		if err != nil {
			return teamsummary.Page{}, fmt.Errorf("list seasons: %w", err)
		}
		return teamsummary.BuildPage(member, season.ResultsForTeam(seasons, member.ID), filter), nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	return s.cache.GetOrLoad(ctx, teamPageCacheKey(member.ID, filter), load)
}

func (s *TeamSummaryService) notFound(ctx context.Context, teamID string) error {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}

	return &TeamNotFoundError{
		TeamID:      teamID,
		Suggestions: SuggestTeamIDs(teamID, teams),
	}
}

func teamPageCacheKey(teamID string, filter teamsummary.Filter) string {
	return "team:" + teamID + ":" + string(filter)
}

type teamSuggestion struct {
	id    string
	score float64
}

// SuggestTeamIDs ranks directory ids against query. Ids that contain the
// query as a fuzzy subsequence rank above plain edit-distance matches.
func SuggestTeamIDs(query string, teams []team.Team) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	candidates := make([]teamSuggestion, 0, len(teams))
	for _, item := range teams {
		score := max(similarity(query, strings.ToLower(item.ID)), similarity(query, strings.ToLower(item.Owner)))
		if fuzzy.MatchNormalizedFold(query, item.ID) || fuzzy.MatchNormalizedFold(query, item.Owner) {
			score += 1
		}
		if score < suggestionSimilarity {
			continue
		}
		candidates = append(candidates, teamSuggestion{id: item.ID, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].id < candidates[j].id
	})

	out := make([]string, 0, maxTeamSuggestions)
	for _, c := range candidates {
		if len(out) == maxTeamSuggestions {
			break
		}
		out = append(out, c.id)
	}
	return out
}

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(maxLen)
}
