package season

import (
	"testing"

	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistory_OrdersSeasonsAndRows(t *testing.T) {
	t.Parallel()

	directory := team.NewDirectory([]team.Team{
		{ID: "alex", Owner: "Alex", DynastyActive: true},
		{ID: "blair", Owner: "Blair"},
	})
	seasons := []Season{
		{Year: 2020, League: LeagueRedraft, Results: []Result{
			{TeamID: "alex", TeamName: "Alpha", Place: IntPtr(2), RegularSeasonRank: IntPtr(1), Wins: IntPtr(10), Losses: IntPtr(3)},
		}},
		{Year: 2021, League: LeagueRedraft},
		{Year: 2021, League: LeagueDynasty, Results: []Result{
			{TeamID: "ghost", Place: nil, RegularSeasonRank: IntPtr(9)},
			{TeamID: "blair", TeamName: "Bravo", Place: IntPtr(5), RegularSeasonRank: IntPtr(4)},
			{TeamID: "alex", TeamName: "Alpha", Place: IntPtr(1), RegularSeasonRank: IntPtr(2), FinalsMVP: "Someone"},
		}},
	}

	got := BuildHistory(seasons, directory, map[int]bool{2021: true})

	require.Len(t, got, 3)
	assert.Equal(t, "2021 Dynasty*", got[0].Heading)
	assert.Equal(t, "2021 Redraft*", got[1].Heading)
	assert.Equal(t, "2020 Redraft", got[2].Heading)
	assert.False(t, got[2].Footnote)

	rows := got[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "alex", rows[0].TeamID)
	assert.Equal(t, MedalGold, rows[0].Medal)
	assert.Equal(t, "", rows[0].PlaceLabel)
	assert.Equal(t, "Someone", rows[0].FinalsMVP)
	assert.True(t, rows[0].Linkable)
	assert.Equal(t, "(#2)", rows[0].RecordLabel)

	assert.Equal(t, "blair", rows[1].TeamID)
	assert.Equal(t, "5.", rows[1].PlaceLabel)
	assert.False(t, rows[1].Linkable)

	assert.Equal(t, "ghost", rows[2].OwnerDisplay)
	assert.Equal(t, "Unnamed Team", rows[2].TeamDisplay)

	assert.Equal(t, "10-3 (#1)", got[2].Rows[0].RecordLabel)
	assert.Equal(t, MedalSilver, got[2].Rows[0].Medal)

	assert.Equal(t, "ghost", seasons[2].Results[0].TeamID, "source results must keep their order")
}

func TestBuildHistory_FinalsMVPOnlyForChampion(t *testing.T) {
	t.Parallel()

	seasons := []Season{{Year: 2022, League: LeagueDynasty, Results: []Result{
		{TeamID: "a", Place: IntPtr(2), FinalsMVP: "Nope"},
	}}}

	got := BuildHistory(seasons, team.Directory{}, nil)

	assert.Empty(t, got[0].Rows[0].FinalsMVP)
}

func TestResult_PlayoffDelta(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Result{Place: IntPtr(1), RegularSeasonRank: IntPtr(2)}.PlayoffDelta())
	assert.Equal(t, -1, Result{Place: IntPtr(3), RegularSeasonRank: IntPtr(2)}.PlayoffDelta())
	assert.Equal(t, 0, Result{Place: IntPtr(3)}.PlayoffDelta())
	assert.Equal(t, 0, Result{RegularSeasonRank: IntPtr(3)}.PlayoffDelta())
	assert.Equal(t, 0, Result{}.PlayoffDelta())
}

func TestGroupByTeam_FirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	seasons := []Season{
		{Year: 2020, League: LeagueDynasty, Results: []Result{{TeamID: "b"}, {TeamID: "a"}}},
		{Year: 2021, League: LeagueRedraft, Results: []Result{{TeamID: "c"}, {TeamID: "b"}}},
	}

	byTeam, order := GroupByTeam(seasons)

	assert.Equal(t, []string{"b", "a", "c"}, order)
	require.Len(t, byTeam["b"], 2)
	assert.Equal(t, LeagueRedraft, byTeam["b"][1].League)
	assert.Equal(t, 2021, byTeam["b"][1].Year)
	assert.Len(t, ResultsForTeam(seasons, "b"), 2)
	assert.Empty(t, ResultsForTeam(seasons, "zzz"))
}

func TestSeason_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Season{Year: 2020, League: LeagueDynasty}.Validate())
	assert.Error(t, Season{Year: 0, League: LeagueDynasty}.Validate())
	assert.Error(t, Season{Year: 2020, League: "keeper"}.Validate())
	assert.Error(t, Season{Year: 2020, League: LeagueRedraft, Results: []Result{{TeamID: " "}}}.Validate())
}
