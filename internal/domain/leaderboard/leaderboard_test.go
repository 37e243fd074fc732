package leaderboard

import (
	"math"
	"testing"

	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(teamID string, place, reg, wins, losses *int) season.Result {
	return season.Result{
		TeamID:            teamID,
		Place:             place,
		RegularSeasonRank: reg,
		Wins:              wins,
		Losses:            losses,
	}
}

var p = season.IntPtr

func TestComputeStats_ChampionThenThird(t *testing.T) {
	t.Parallel()

	seasons := []season.Season{
		{Year: 2022, League: season.LeagueDynasty, Results: []season.Result{result("a", p(1), p(2), nil, nil)}},
		{Year: 2023, League: season.LeagueDynasty, Results: []season.Result{result("a", p(3), p(2), nil, nil)}},
	}
	byTeam, _ := season.GroupByTeam(seasons)

	got := ComputeStats("a", "Alex", byTeam["a"])

	assert.Equal(t, 1, got.Rings)
	assert.InDelta(t, 2.0, got.AvgFinish, 1e-9)
	assert.InDelta(t, 0.0, got.AvgDelta, 1e-9)
	assert.InDelta(t, 2.0, got.AvgReg, 1e-9)
	assert.Equal(t, 2, got.Top3)
	assert.InDelta(t, 1.0, got.PlayoffPct, 1e-9)
}

func TestComputeStats_SeasonWithoutGamesCountsAsZero(t *testing.T) {
	t.Parallel()

	results := []season.TeamResult{
		{Result: result("b", p(2), p(1), p(10), p(2)), Year: 2022},
		{Result: result("b", p(8), p(9), nil, nil), Year: 2023},
	}

	got := ComputeStats("b", "Blair", results)

	assert.InDelta(t, 0.4167, got.WinPct, 1e-4)
	assert.InDelta(t, 10.0/12.0, got.BestReg, 1e-9)
	assert.InDelta(t, 0.5, got.PlayoffPct, 1e-9)
}

func TestComputeStats_DeltaFallbackIsZero(t *testing.T) {
	t.Parallel()

	results := []season.TeamResult{
		{Result: result("c", p(4), nil, nil, nil)},
		{Result: result("c", nil, p(7), nil, nil)},
		{Result: result("c", nil, nil, nil, nil)},
		{Result: result("c", p(1), p(5), nil, nil)},
	}

	got := ComputeStats("c", "", results)

	assert.InDelta(t, 1.0, got.AvgDelta, 1e-9)
	assert.InDelta(t, 5.0/4.0, got.AvgFinish, 1e-9)
	assert.InDelta(t, 3.0, got.AvgReg, 1e-9)
	assert.False(t, math.IsNaN(got.WinPct))
}

func TestComputeStats_RangesHold(t *testing.T) {
	t.Parallel()

	results := []season.TeamResult{
		{Result: result("d", p(13), p(12), p(0), p(0))},
		{Result: result("d", p(6), p(3), p(7), p(7))},
	}

	got := ComputeStats("d", "", results)

	assert.GreaterOrEqual(t, got.WinPct, 0.0)
	assert.LessOrEqual(t, got.WinPct, 1.0)
	assert.GreaterOrEqual(t, got.PlayoffPct, 0.0)
	assert.LessOrEqual(t, got.PlayoffPct, 1.0)
	assert.InDelta(t, 9.5, got.AvgFinish, 1e-9, "leaderboard keeps the raw unclamped place")
}

func TestIsEligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		results, seasons int
		want             bool
	}{
		{results: 0, seasons: 0, want: false},
		{results: 1, seasons: 2, want: true},
		{results: 1, seasons: 3, want: false},
		{results: 2, seasons: 3, want: true},
		{results: 5, seasons: 10, want: true},
		{results: 4, seasons: 10, want: false},
	}
	for _, tc := range tests {
		if got := IsEligible(tc.results, tc.seasons); got != tc.want {
			t.Fatalf("IsEligible(%d, %d)=%v want %v", tc.results, tc.seasons, got, tc.want)
		}
	}
}

func leagueFixture() ([]season.Season, team.Directory) {
	directory := team.NewDirectory([]team.Team{
		{ID: "t1", Owner: "One"},
		{ID: "t2", Owner: "Two"},
		{ID: "t3", Owner: "Three"},
		{ID: "t4", Owner: "Four"},
		{ID: "t5", Owner: "Five"},
		{ID: "t6", Owner: "Six"},
		{ID: "t7", Owner: "Seven"},
	})

	places := [][]int{
		// t1..t6 per season; t7 only plays once.
		{1, 2, 3, 4, 5, 6},
		{1, 3, 2, 6, 4, 5},
		{2, 1, 3, 5, 6, 4},
		{1, 2, 4, 3, 6, 5},
	}
	teamIDs := []string{"t1", "t2", "t3", "t4", "t5", "t6"}
	seasons := make([]season.Season, 0, len(places))
	for i, row := range places {
		s := season.Season{Year: 2020 + i, League: season.LeagueDynasty}
		for j, place := range row {
			s.Results = append(s.Results, result(teamIDs[j], p(place), p(j+1), p(10-j), p(j+3)))
		}
		if i == 0 {
			s.Results = append(s.Results, result("t7", p(12), p(12), p(1), p(12)))
		}
		seasons = append(seasons, s)
	}
	return seasons, directory
}

func TestBuild_CategoriesRespectFiltersAndLimits(t *testing.T) {
	t.Parallel()

	seasons, directory := leagueFixture()
	boards := Build(seasons, directory)
	require.Len(t, boards, len(Categories()))

	byID := make(map[CategoryID]Board, len(boards))
	for _, b := range boards {
		require.LessOrEqual(t, len(b.Entries), MaxEntries)
		for _, e := range b.Entries {
			assert.NotEqual(t, "t7", e.TeamID, "ineligible team listed in %s", b.ID)
		}
		byID[b.ID] = b
	}

	goat := byID[CategoryGOAT]
	require.NotEmpty(t, goat.Entries)
	assert.Equal(t, "t1", goat.Entries[0].TeamID)
	assert.Equal(t, "1.25", goat.Entries[0].Display)
	assert.True(t, goat.ShowRank)

	rings := byID[CategoryBustDown]
	require.Len(t, rings.Entries, 1)
	assert.Equal(t, "t1", rings.Entries[0].TeamID)
	assert.Equal(t, "3", rings.Entries[0].Display)

	zero := byID[CategoryZeroRings]
	require.Len(t, zero.Entries, 4)
	assert.False(t, zero.ShowRank)
	assert.Equal(t, []string{"t3", "t4", "t5", "t6"}, entryIDs(zero))
	for _, e := range zero.Entries {
		assert.NotContains(t, entryIDs(rings), e.TeamID)
	}

	for _, e := range byID[CategoryPlayoffPerennial].Entries {
		assert.True(t, e.Value > 0.5)
	}
	for _, e := range byID[CategoryPostseason].Entries {
		assert.True(t, e.Value > 0)
		assert.Equal(t, "+", e.Display[:1])
	}
	for _, e := range byID[CategoryMeltdown].Entries {
		assert.True(t, e.Value < 0)
	}
}

func TestRank_StableOnTiesAndDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	stats := []TeamStats{
		{TeamID: "x", Top3: 4},
		{TeamID: "y", Top3: 6},
		{TeamID: "z", Top3: 4},
		{TeamID: "w", Top3: 2},
	}
	var podium Category
	for _, c := range Categories() {
		if c.ID == CategoryPodium {
			podium = c
		}
	}

	board := Rank(podium, stats)

	assert.Equal(t, []string{"y", "x", "z"}, entryIDs(board))
	assert.Equal(t, []int{1, 2, 3}, []int{board.Entries[0].Rank, board.Entries[1].Rank, board.Entries[2].Rank})
	assert.Equal(t, "x", stats[0].TeamID)
	assert.Equal(t, "w", stats[3].TeamID)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "41.7%", FormatValue(FormatPercent, 0.41666))
	assert.Equal(t, "2.00", FormatValue(FormatFixed, 2))
	assert.Equal(t, "+0.75", FormatValue(FormatSignedFixed, 0.75))
	assert.Equal(t, "-1.50", FormatValue(FormatFixed, -1.5))
	assert.Equal(t, "4", FormatValue(FormatCount, 4))
}

func entryIDs(b Board) []string {
	out := make([]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		out = append(out, e.TeamID)
	}
	return out
}
