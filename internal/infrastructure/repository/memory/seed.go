package memory

import (
	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
)

// SeedTeams is a small demo directory used when no data directory is set.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "alex", Owner: "Alex", DynastyName: "Gridiron Ghosts", RedraftName: "Ghost Protocol", DynastyActive: true, RedraftActive: true},
		{ID: "blair", Owner: "Blair", DynastyName: "Blitz Brigade", DynastyActive: true},
		{ID: "casey", Owner: "Casey", RedraftName: "Fourth and Long", RedraftActive: true},
		{ID: "devon", Owner: "Devon", DynastyName: "Sack Masters", RedraftName: "Sack Masters", DynastyActive: true, RedraftActive: true},
		{ID: "emery", Owner: "Emery", DynastyName: "Red Zone Rebels"},
		{ID: "frankie", Owner: "Frankie", RedraftName: "Hail Marys", RedraftActive: true},
	}
}

// SeedSeasons is the demo history matching SeedTeams.
func SeedSeasons() []season.Season {
	p := season.IntPtr
	return []season.Season{
		{Year: 2021, League: season.LeagueRedraft, Results: []season.Result{
			{TeamID: "alex", TeamName: "Ghost Protocol", Place: p(1), RegularSeasonRank: p(3), Wins: p(9), Losses: p(4), FinalsMVP: "J. Taylor"},
			{TeamID: "casey", TeamName: "Fourth and Long", Place: p(2), RegularSeasonRank: p(1), Wins: p(11), Losses: p(2)},
			{TeamID: "devon", TeamName: "Sack Masters", Place: p(3), RegularSeasonRank: p(2), Wins: p(10), Losses: p(3)},
			{TeamID: "frankie", TeamName: "Hail Marys", Place: p(6), RegularSeasonRank: p(5), Wins: p(6), Losses: p(7)},
		}},
		{Year: 2022, League: season.LeagueDynasty, Results: []season.Result{
			{TeamID: "blair", TeamName: "Blitz Brigade", Place: p(1), RegularSeasonRank: p(4), FinalsMVP: "C. McCaffrey"},
			{TeamID: "devon", TeamName: "Sack Masters", Place: p(2), RegularSeasonRank: p(1)},
			{TeamID: "alex", TeamName: "Gridiron Ghosts", Place: p(4), RegularSeasonRank: p(2)},
			{TeamID: "emery", TeamName: "Red Zone Rebels", Place: p(13), RegularSeasonRank: p(12)},
		}},
		{Year: 2022, League: season.LeagueRedraft, Results: []season.Result{
			{TeamID: "casey", TeamName: "Fourth and Long", Place: p(1), RegularSeasonRank: p(2), Wins: p(10), Losses: p(4), FinalsMVP: "J. Allen"},
			{TeamID: "frankie", TeamName: "Hail Marys", Place: p(3), RegularSeasonRank: p(6), Wins: p(7), Losses: p(7)},
			{TeamID: "alex", TeamName: "Ghost Protocol", Place: p(5), RegularSeasonRank: p(4), Wins: p(8), Losses: p(6)},
			{TeamID: "devon", TeamName: "Sack Masters", Place: p(8), RegularSeasonRank: p(8), Wins: p(5), Losses: p(9)},
		}},
		{Year: 2023, League: season.LeagueDynasty, Results: []season.Result{
			{TeamID: "blair", TeamName: "Blitz Brigade", Place: p(1), RegularSeasonRank: p(1), Wins: p(12), Losses: p(2), FinalsMVP: "T. Hill"},
			{TeamID: "alex", TeamName: "Gridiron Ghosts", Place: p(2), RegularSeasonRank: p(3), Wins: p(9), Losses: p(5)},
			{TeamID: "devon", TeamName: "Sack Masters", Place: p(7), RegularSeasonRank: p(5), Wins: p(7), Losses: p(7)},
			{TeamID: "emery", TeamName: "Red Zone Rebels", Place: p(10), RegularSeasonRank: p(9), Wins: p(4), Losses: p(10)},
		}},
	}
}
