package teamsummary

import (
	"testing"

	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamFixture() team.Team {
	return team.Team{ID: "a", Owner: "Alex", DynastyActive: true}
}

func mixedHistory() []season.TeamResult {
	return []season.TeamResult{
		{Year: 2021, League: season.LeagueDynasty, Result: season.Result{TeamID: "a", Place: p(13)}},
		{Year: 2020, League: season.LeagueRedraft, Result: season.Result{TeamID: "a", Place: p(1)}},
		{Year: 2021, League: season.LeagueRedraft, Result: season.Result{TeamID: "a", Place: p(5)}},
		{Year: 2022, League: season.LeagueRedraft, Result: season.Result{TeamID: "a"}},
	}
}

func TestBuildChart_OrdersClampsAndSpreadsPoints(t *testing.T) {
	t.Parallel()

	input := mixedHistory()
	chart := BuildChart(input, FilterBoth)

	require.False(t, chart.Empty)
	require.Len(t, chart.Points, 4)

	assert.Equal(t, 2020, chart.Points[0].Year)
	assert.Equal(t, season.LeagueRedraft, chart.Points[1].League)
	assert.Equal(t, 2021, chart.Points[1].Year)
	assert.Equal(t, season.LeagueDynasty, chart.Points[2].League)
	assert.Equal(t, 12, chart.Points[2].Place)
	assert.Equal(t, MaxRank, chart.Points[3].Place)

	assert.InDelta(t, ChartPadding, chart.Points[0].X, 1e-9)
	assert.InDelta(t, ChartWidth-ChartPadding, chart.Points[3].X, 1e-9)
	assert.InDelta(t, ChartPadding, chart.Points[0].Y, 1e-9)
	assert.InDelta(t, ChartHeight-ChartPadding, chart.Points[2].Y, 1e-9)
	for i := 1; i < len(chart.Points); i++ {
		assert.Greater(t, chart.Points[i].X, chart.Points[i-1].X)
	}
	for _, pt := range chart.Points {
		assert.GreaterOrEqual(t, pt.Place, MinRank)
		assert.LessOrEqual(t, pt.Place, MaxRank)
	}

	assert.Equal(t, 2021, input[0].Year, "input order must be preserved")
	assert.Equal(t, 13, *input[0].Place, "clamping must not touch source data")
}

func TestBuildChart_SinglePointIsCentered(t *testing.T) {
	t.Parallel()

	chart := BuildChart(mixedHistory(), FilterDynasty)

	require.Len(t, chart.Points, 1)
	assert.InDelta(t, ChartWidth/2, chart.Points[0].X, 1e-9)
	assert.InDelta(t, ChartHeight-ChartPadding, chart.Points[0].Y, 1e-9)
}

func TestBuildChart_EmptyFilter(t *testing.T) {
	t.Parallel()

	redraftOnly := []season.TeamResult{
		{Year: 2020, League: season.LeagueRedraft, Result: season.Result{TeamID: "a", Place: p(3)}},
	}

	chart := BuildChart(redraftOnly, FilterDynasty)

	assert.True(t, chart.Empty)
	assert.Empty(t, chart.Points)
	assert.Equal(t, "No Dynasty seasons to display.", chart.EmptyMessage)
	assert.Equal(t, "No seasons to display.", BuildChart(nil, FilterBoth).EmptyMessage)
}

func TestBuildChart_MidRankY(t *testing.T) {
	t.Parallel()

	results := []season.TeamResult{
		{Year: 2020, League: season.LeagueRedraft, Result: season.Result{Place: p(1)}},
		{Year: 2021, League: season.LeagueRedraft, Result: season.Result{Place: p(12)}},
		{Year: 2022, League: season.LeagueRedraft, Result: season.Result{Place: p(6)}},
	}

	chart := BuildChart(results, FilterRedraft)

	require.Len(t, chart.Points, 3)
	span := ChartHeight - 2*ChartPadding
	assert.InDelta(t, ChartPadding+5.0/11.0*span, chart.Points[2].Y, 1e-9)
	assert.InDelta(t, ChartWidth/2, chart.Points[1].X, 1e-9)
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := map[string]Filter{
		"":         FilterBoth,
		"both":     FilterBoth,
		" Dynasty": FilterDynasty,
		"REDRAFT":  FilterRedraft,
	}
	for raw, want := range tests {
		got, err := ParseFilter(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseFilter("keeper")
	assert.Error(t, err)
}

func TestClampPlace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, ClampPlace(p(13)))
	assert.Equal(t, 12, ClampPlace(nil))
	assert.Equal(t, 1, ClampPlace(p(0)))
	assert.Equal(t, 7, ClampPlace(p(7)))
}
