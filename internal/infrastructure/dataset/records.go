package dataset

import (
	"strings"

	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
)

type teamRecord struct {
	ID            string `json:"id" validate:"required"`
	Owner         string `json:"owner" validate:"required"`
	DynastyName   string `json:"dynastyName"`
	RedraftName   string `json:"redraftName"`
	DynastyActive bool   `json:"dynastyActive"`
	RedraftActive bool   `json:"redraftActive"`
}

type seasonRecord struct {
	Year    int            `json:"year" validate:"required,gt=0"`
	League  string         `json:"league" validate:"required,oneof=dynasty redraft"`
	Results []resultRecord `json:"results" validate:"dive"`
}

type resultRecord struct {
	TeamID            string `json:"teamId" validate:"required"`
	TeamName          string `json:"teamName"`
	Place             *int   `json:"place" validate:"omitempty,gt=0"`
	RegularSeasonRank *int   `json:"regularSeasonRank" validate:"omitempty,gt=0"`
	Wins              *int   `json:"wins" validate:"omitempty,gte=0"`
	Losses            *int   `json:"losses" validate:"omitempty,gte=0"`
	FinalsMVP         string `json:"finalsMVP"`
}

func (r teamRecord) toDomain() team.Team {
	return team.Team{
		ID:            strings.TrimSpace(r.ID),
		Owner:         strings.TrimSpace(r.Owner),
		DynastyName:   r.DynastyName,
		RedraftName:   r.RedraftName,
		DynastyActive: r.DynastyActive,
		RedraftActive: r.RedraftActive,
	}
}

func (r seasonRecord) toDomain() season.Season {
	results := make([]season.Result, 0, len(r.Results))
	for _, item := range r.Results {
		results = append(results, season.Result{
			TeamID:            strings.TrimSpace(item.TeamID),
			TeamName:          item.TeamName,
			Place:             item.Place,
			RegularSeasonRank: item.RegularSeasonRank,
			Wins:              item.Wins,
			Losses:            item.Losses,
			FinalsMVP:         item.FinalsMVP,
		})
	}

	return season.Season{
		Year:    r.Year,
		League:  season.LeagueType(strings.ToLower(strings.TrimSpace(r.League))),
		Results: results,
	}
}
