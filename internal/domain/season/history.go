package season

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/league-history/internal/domain/team"
)

const unnamedTeam = "Unnamed Team"

// Medal marks podium finishes in the history listing.
type Medal string

const (
	MedalNone   Medal = ""
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

// HistorySeason is one season block of the history listing.
type HistorySeason struct {
	Year     int
	League   LeagueType
	Heading  string
	Footnote bool
	Rows     []HistoryRow
}

// HistoryRow is one team line inside a season block.
type HistoryRow struct {
	TeamID       string
	Place        *int
	PlaceLabel   string
	Medal        Medal
	OwnerDisplay string
	TeamDisplay  string
	RecordLabel  string
	Linkable     bool
	FinalsMVP    string
}

// BuildHistory orders seasons newest first (dynasty before redraft within a
// year) and results by place. Inputs are not modified.
func BuildHistory(seasons []Season, directory team.Directory, footnoteYears map[int]bool) []HistorySeason {
	sorted := make([]Season, len(seasons))
	copy(sorted, seasons)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year > sorted[j].Year
		}
		return sorted[i].League == LeagueDynasty && sorted[j].League != LeagueDynasty
	})

	out := make([]HistorySeason, 0, len(sorted))
	for _, s := range sorted {
		footnote := footnoteYears[s.Year]
		heading := fmt.Sprintf("%d %s", s.Year, s.League.Title())
		if footnote {
			heading += "*"
		}

		out = append(out, HistorySeason{
			Year:     s.Year,
			League:   s.League,
			Heading:  heading,
			Footnote: footnote,
			Rows:     buildHistoryRows(s.Results, directory),
		})
	}
	return out
}

func buildHistoryRows(results []Result, directory team.Directory) []HistoryRow {
	ordered := make([]Result, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Place, ordered[j].Place
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a < *b
	})

	rows := make([]HistoryRow, 0, len(ordered))
	for _, item := range ordered {
		member, known := directory[item.TeamID]

		owner := item.TeamID
		if known && strings.TrimSpace(member.Owner) != "" {
			owner = member.Owner
		}
		teamName := item.TeamName
		if strings.TrimSpace(teamName) == "" {
			teamName = unnamedTeam
		}

		row := HistoryRow{
			TeamID:       item.TeamID,
			Place:        item.Place,
			PlaceLabel:   placeLabel(item.Place),
			Medal:        medalFor(item.Place),
			OwnerDisplay: owner,
			TeamDisplay:  teamName,
			RecordLabel:  recordLabel(item),
			Linkable:     known && member.IsActive(),
		}
		if item.IsChampion() {
			row.FinalsMVP = item.FinalsMVP
		}
		rows = append(rows, row)
	}
	return rows
}

func placeLabel(place *int) string {
	if place == nil || *place <= 3 {
		return ""
	}
	return fmt.Sprintf("%d.", *place)
}

func medalFor(place *int) Medal {
	if place == nil {
		return MedalNone
	}
	switch *place {
	case 1:
		return MedalGold
	case 2:
		return MedalSilver
	case 3:
		return MedalBronze
	default:
		return MedalNone
	}
}

func recordLabel(r Result) string {
	rank := "-"
	if r.RegularSeasonRank != nil {
		rank = fmt.Sprintf("%d", *r.RegularSeasonRank)
	}
	if r.Wins != nil && r.Losses != nil {
		return fmt.Sprintf("%d-%d (#%s)", *r.Wins, *r.Losses, rank)
	}
	return fmt.Sprintf("(#%s)", rank)
}
