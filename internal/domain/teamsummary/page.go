package teamsummary

import (
	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
)

// Page is everything a team page renders.
type Page struct {
	Team    team.Team
	Summary Summary
	Chart   Chart
}

func BuildPage(member team.Team, results []season.TeamResult, filter Filter) Page {
	return Page{
		Team:    member,
		Summary: Summarize(results),
		Chart:   BuildChart(results, filter),
	}
}
