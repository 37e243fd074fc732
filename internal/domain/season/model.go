package season

import (
	"fmt"
	"strings"
)

// LeagueType tags the format a season was played under.
type LeagueType string

const (
	LeagueDynasty LeagueType = "dynasty"
	LeagueRedraft LeagueType = "redraft"
)

// PlayoffCutoff is the last place that still counts as a playoff appearance.
const PlayoffCutoff = 6

func (l LeagueType) Valid() bool {
	return l == LeagueDynasty || l == LeagueRedraft
}

// Title returns the capitalized league name, e.g. "Dynasty".
func (l LeagueType) Title() string {
	s := string(l)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Season is one year of competition under one league type.
type Season struct {
	Year    int
	League  LeagueType
	Results []Result
}

func (s Season) Validate() error {
	if s.Year <= 0 {
		return fmt.Errorf("season year must be positive")
	}
	if !s.League.Valid() {
		return fmt.Errorf("season league %q is not supported", s.League)
	}
	for i, item := range s.Results {
		if strings.TrimSpace(item.TeamID) == "" {
			return fmt.Errorf("season %d %s result %d: team id is required", s.Year, s.League, i)
		}
	}

	return nil
}

// Result is one team's outcome in a season. Nil pointers mean the value was
// not recorded.
type Result struct {
	TeamID            string
	TeamName          string
	Place             *int
	RegularSeasonRank *int
	Wins              *int
	Losses            *int
	FinalsMVP         string
}

// TeamResult is a Result joined with the season it belongs to.
type TeamResult struct {
	Result
	Year   int
	League LeagueType
}

func (r Result) PlaceOrZero() int {
	return valueOrZero(r.Place)
}

func (r Result) RegularSeasonRankOrZero() int {
	return valueOrZero(r.RegularSeasonRank)
}

func (r Result) WinsOrZero() int {
	return valueOrZero(r.Wins)
}

func (r Result) LossesOrZero() int {
	return valueOrZero(r.Losses)
}

// Games is wins plus losses with missing counts read as zero.
func (r Result) Games() int {
	return r.WinsOrZero() + r.LossesOrZero()
}

// WinRatio is wins/(wins+losses), or 0 when no games were recorded.
func (r Result) WinRatio() float64 {
	games := r.Games()
	if games == 0 {
		return 0
	}
	return float64(r.WinsOrZero()) / float64(games)
}

func (r Result) IsChampion() bool {
	return r.Place != nil && *r.Place == 1
}

func (r Result) MadePlayoffs() bool {
	return r.Place != nil && *r.Place >= 1 && *r.Place <= PlayoffCutoff
}

func (r Result) IsTopThree() bool {
	return r.Place != nil && *r.Place >= 1 && *r.Place <= 3
}

// PlayoffDelta is regularSeasonRank - place. When either side is missing the
// fallback subtracts the present value from itself, so the record counts as 0.
func (r Result) PlayoffDelta() int {
	reg := r.RegularSeasonRank
	if reg == nil {
		reg = r.Place
	}
	place := r.Place
	if place == nil {
		place = r.RegularSeasonRank
	}
	return valueOrZero(reg) - valueOrZero(place)
}

// GroupByTeam flattens seasons into per-team result lists. The returned order
// slice lists team ids by first appearance in history.
func GroupByTeam(seasons []Season) (map[string][]TeamResult, []string) {
	byTeam := make(map[string][]TeamResult)
	order := make([]string, 0)
	for _, s := range seasons {
		for _, item := range s.Results {
			if _, ok := byTeam[item.TeamID]; !ok {
				order = append(order, item.TeamID)
			}
			byTeam[item.TeamID] = append(byTeam[item.TeamID], TeamResult{
				Result: item,
				Year:   s.Year,
				League: s.League,
			})
		}
	}
	return byTeam, order
}

// ResultsForTeam returns every result teamID has, in history order.
func ResultsForTeam(seasons []Season, teamID string) []TeamResult {
	out := make([]TeamResult, 0)
	for _, s := range seasons {
		for _, item := range s.Results {
			if item.TeamID != teamID {
				continue
			}
			out = append(out, TeamResult{Result: item, Year: s.Year, League: s.League})
		}
	}
	return out
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// IntPtr is a helper for building results with recorded values.
func IntPtr(v int) *int {
	return &v
}
