package httpapi

import (
	"github.com/riskibarqy/league-history/internal/domain/leaderboard"
	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/riskibarqy/league-history/internal/domain/teamsummary"
)

type leaderboardDTO struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Subtitle string                `json:"subtitle"`
	Metric   string                `json:"metric"`
	ShowRank bool                  `json:"showRank"`
	Entries  []leaderboardEntryDTO `json:"entries"`
}

type leaderboardEntryDTO struct {
	Rank    int     `json:"rank"`
	TeamID  string  `json:"teamId"`
	Owner   string  `json:"owner"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type historyDTO struct {
	Seasons       []historySeasonDTO `json:"seasons"`
	FootnoteYears []int              `json:"footnoteYears"`
}

type historySeasonDTO struct {
	Year     int             `json:"year"`
	League   string          `json:"league"`
	Heading  string          `json:"heading"`
	Footnote bool            `json:"footnote"`
	Rows     []historyRowDTO `json:"rows"`
}

type historyRowDTO struct {
	TeamID     string `json:"teamId"`
	Place      *int   `json:"place,omitempty"`
	PlaceLabel string `json:"placeLabel,omitempty"`
	Medal      string `json:"medal,omitempty"`
	Owner      string `json:"owner"`
	TeamName   string `json:"teamName"`
	Record     string `json:"record"`
	Linkable   bool   `json:"linkable"`
	FinalsMVP  string `json:"finalsMVP,omitempty"`
}

type teamDTO struct {
	ID            string `json:"id"`
	Owner         string `json:"owner"`
	DynastyName   string `json:"dynastyName,omitempty"`
	RedraftName   string `json:"redraftName,omitempty"`
	DynastyActive bool   `json:"dynastyActive"`
	RedraftActive bool   `json:"redraftActive"`
	Active        bool   `json:"active"`
}

type teamPageDTO struct {
	Team    teamDTO    `json:"team"`
	Summary summaryDTO `json:"summary"`
	Chart   chartDTO   `json:"chart"`
}

type summaryDTO struct {
	SeasonsPlayed           int      `json:"seasonsPlayed"`
	MinYear                 int      `json:"minYear,omitempty"`
	MaxYear                 int      `json:"maxYear,omitempty"`
	YearSpan                string   `json:"yearSpan"`
	TotalWins               int      `json:"totalWins"`
	TotalLosses             int      `json:"totalLosses"`
	WinPct                  *int     `json:"winPct"`
	WinPctDisplay           string   `json:"winPctDisplay"`
	PlayoffAppearances      int      `json:"playoffAppearances"`
	PlayoffPct              *int     `json:"playoffPct"`
	PlayoffPctDisplay       string   `json:"playoffPctDisplay"`
	AvgRegFinish            *float64 `json:"avgRegFinish"`
	AvgRegFinishDisplay     string   `json:"avgRegFinishDisplay"`
	AvgPlayoffFinish        *float64 `json:"avgPlayoffFinish"`
	AvgPlayoffFinishDisplay string   `json:"avgPlayoffFinishDisplay"`
	NumRings                int      `json:"numRings"`
	Rings                   string   `json:"rings"`
}

type chartDTO struct {
	Filter       string          `json:"filter"`
	Width        float64         `json:"width"`
	Height       float64         `json:"height"`
	Padding      float64         `json:"padding"`
	MinRank      int             `json:"minRank"`
	MaxRank      int             `json:"maxRank"`
	Points       []chartPointDTO `json:"points"`
	Empty        bool            `json:"empty"`
	EmptyMessage string          `json:"emptyMessage,omitempty"`
}

type chartPointDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Place  int     `json:"place"`
	Year   int     `json:"year"`
	League string  `json:"league"`
}

// Presenter maps view-models to the JSON documents served by the API and
// written by the static export.
type Presenter struct{}

func NewPresenter() Presenter {
	return Presenter{}
}

func (Presenter) Leaderboards(boards []leaderboard.Board) any {
	out := make([]leaderboardDTO, 0, len(boards))
	for _, board := range boards {
		entries := make([]leaderboardEntryDTO, 0, len(board.Entries))
		for _, entry := range board.Entries {
			entries = append(entries, leaderboardEntryDTO{
				Rank:    entry.Rank,
				TeamID:  entry.TeamID,
				Owner:   entry.Owner,
				Value:   entry.Value,
				Display: entry.Display,
			})
		}
		out = append(out, leaderboardDTO{
			ID:       string(board.ID),
			Title:    board.Title,
			Subtitle: board.Subtitle,
			Metric:   string(board.Metric),
			ShowRank: board.ShowRank,
			Entries:  entries,
		})
	}
	return out
}

func (Presenter) History(seasons []season.HistorySeason, footnoteYears []int) any {
	out := historyDTO{
		Seasons:       make([]historySeasonDTO, 0, len(seasons)),
		FootnoteYears: footnoteYears,
	}
	if out.FootnoteYears == nil {
		out.FootnoteYears = []int{}
	}
	for _, item := range seasons {
		rows := make([]historyRowDTO, 0, len(item.Rows))
		for _, row := range item.Rows {
			rows = append(rows, historyRowDTO{
				TeamID:     row.TeamID,
				Place:      row.Place,
				PlaceLabel: row.PlaceLabel,
				Medal:      string(row.Medal),
				Owner:      row.OwnerDisplay,
				TeamName:   row.TeamDisplay,
				Record:     row.RecordLabel,
				Linkable:   row.Linkable,
				FinalsMVP:  row.FinalsMVP,
			})
		}
		out.Seasons = append(out.Seasons, historySeasonDTO{
			Year:     item.Year,
			League:   string(item.League),
			Heading:  item.Heading,
			Footnote: item.Footnote,
			Rows:     rows,
		})
	}
	return out
}

func (Presenter) Teams(teams []team.Team) any {
	out := make([]teamDTO, 0, len(teams))
	for _, item := range teams {
		out = append(out, toTeamDTO(item))
	}
	return out
}

func (Presenter) TeamPage(page teamsummary.Page) any {
	points := make([]chartPointDTO, 0, len(page.Chart.Points))
	for _, p := range page.Chart.Points {
		points = append(points, chartPointDTO{
			X:      p.X,
			Y:      p.Y,
			Place:  p.Place,
			Year:   p.Year,
			League: string(p.League),
		})
	}

	s := page.Summary
	return teamPageDTO{
		Team: toTeamDTO(page.Team),
		Summary: summaryDTO{
			SeasonsPlayed:           s.SeasonsPlayed,
			MinYear:                 s.MinYear,
			MaxYear:                 s.MaxYear,
			YearSpan:                s.YearSpan(),
			TotalWins:               s.TotalWins,
			TotalLosses:             s.TotalLosses,
			WinPct:                  s.WinPct,
			WinPctDisplay:           s.WinPctDisplay(),
			PlayoffAppearances:      s.PlayoffAppearances,
			PlayoffPct:              s.PlayoffPct,
			PlayoffPctDisplay:       s.PlayoffPctDisplay(),
			AvgRegFinish:            s.AvgRegFinish,
			AvgRegFinishDisplay:     s.AvgRegFinishDisplay(),
			AvgPlayoffFinish:        s.AvgPlayoffFinish,
			AvgPlayoffFinishDisplay: s.AvgPlayoffFinishDisplay(),
			NumRings:                s.NumRings,
			Rings:                   s.Rings(),
		},
		Chart: chartDTO{
			Filter:       string(page.Chart.Filter),
			Width:        teamsummary.ChartWidth,
			Height:       teamsummary.ChartHeight,
			Padding:      teamsummary.ChartPadding,
			MinRank:      teamsummary.MinRank,
			MaxRank:      teamsummary.MaxRank,
			Points:       points,
			Empty:        page.Chart.Empty,
			EmptyMessage: page.Chart.EmptyMessage,
		},
	}
}

func toTeamDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:            item.ID,
		Owner:         item.Owner,
		DynastyName:   item.DynastyName,
		RedraftName:   item.RedraftName,
		DynastyActive: item.DynastyActive,
		RedraftActive: item.RedraftActive,
		Active:        item.IsActive(),
	}
}
