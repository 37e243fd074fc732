package leaderboard

import (
	"sort"

	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
)

// MaxEntries caps every category list.
const MaxEntries = 5

// Board is one rendered category.
type Board struct {
	ID       CategoryID
	Title    string
	Subtitle string
	Metric   Metric
	ShowRank bool
	Entries  []Entry
}

// Entry is one ranked team inside a Board.
type Entry struct {
	Rank    int
	TeamID  string
	Owner   string
	Value   float64
	Display string
}

// EligibleStats computes stats for every team with enough seasons, in order
// of first appearance in the history.
func EligibleStats(seasons []season.Season, directory team.Directory) []TeamStats {
	byTeam, order := season.GroupByTeam(seasons)

	out := make([]TeamStats, 0, len(order))
	for _, teamID := range order {
		results := byTeam[teamID]
		if !IsEligible(len(results), len(seasons)) {
			continue
		}
		out = append(out, ComputeStats(teamID, directory.Owner(teamID), results))
	}
	return out
}

// Build renders every category in table order.
func Build(seasons []season.Season, directory team.Directory) []Board {
	stats := EligibleStats(seasons, directory)
	categories := Categories()

	out := make([]Board, 0, len(categories))
	for _, c := range categories {
		out = append(out, Rank(c, stats))
	}
	return out
}

// Rank filters, stably sorts and truncates stats for one category. Teams
// with equal values keep their input order; stats itself is left untouched.
func Rank(c Category, stats []TeamStats) Board {
	candidates := make([]TeamStats, 0, len(stats))
	for _, s := range stats {
		if c.Eligible != nil && !c.Eligible(s) {
			continue
		}
		candidates = append(candidates, s)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].Value(c.Metric), candidates[j].Value(c.Metric)
		if c.Direction == Ascending {
			return a < b
		}
		return a > b
	})
	if len(candidates) > MaxEntries {
		candidates = candidates[:MaxEntries]
	}

	board := Board{
		ID:       c.ID,
		Title:    c.Title,
		Subtitle: c.Subtitle,
		Metric:   c.Metric,
		ShowRank: !(c.HideRankWhenTied && allTied(candidates, c.Metric)),
		Entries:  make([]Entry, 0, len(candidates)),
	}
	for i, s := range candidates {
		v := s.Value(c.Metric)
		board.Entries = append(board.Entries, Entry{
			Rank:    i + 1,
			TeamID:  s.TeamID,
			Owner:   s.Owner,
			Value:   v,
			Display: FormatValue(c.Format, v),
		})
	}
	return board
}

func allTied(stats []TeamStats, m Metric) bool {
	for _, s := range stats {
		if s.Value(m) != stats[0].Value(m) {
			return false
		}
	}
	return true
}
