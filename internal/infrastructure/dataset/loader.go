// Package dataset reads the static league files into domain types.
package dataset

import (
	"context"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/riskibarqy/league-history/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	TeamsFile   = "teams.json"
	HistoryFile = "leagueHistory.json"
)

// Dataset is the full, validated input: the team directory and every season.
type Dataset struct {
	Teams   []team.Team
	Seasons []season.Season
}

type Loader struct {
	dir       string
	validator *validator.Validate
	logger    *logging.Logger
}

func NewLoader(dir string, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{
		dir:       dir,
		validator: validator.New(),
		logger:    logger,
	}
}

// Load reads both files concurrently and validates them.
func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	var teamRows []teamRecord
	var seasonRows []seasonRecord

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(context.Context) error {
		return l.readJSON(TeamsFile, &teamRows)
	})
	p.Go(func(context.Context) error {
		return l.readJSON(HistoryFile, &seasonRows)
	})
	if err := p.Wait(); err != nil {
		return Dataset{}, err
	}

	teams, err := l.mapTeams(teamRows)
	if err != nil {
		return Dataset{}, err
	}
	seasons, err := l.mapSeasons(seasonRows)
	if err != nil {
		return Dataset{}, err
	}

	l.warnUnknownTeams(ctx, teams, seasons)
	l.logger.InfoContext(ctx, "dataset loaded",
		"dir", l.dir,
		"teams", len(teams),
		"seasons", len(seasons),
	)

	return Dataset{Teams: teams, Seasons: seasons}, nil
}

func (l *Loader) readJSON(name string, out any) error {
	path := filepath.Join(l.dir, name)
	body, err := os.ReadFile(path)
	if err != nil {
		return crerr.Wrapf(err, "read %s", path)
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return crerr.Wrapf(err, "decode %s", path)
	}
	return nil
}

func (l *Loader) mapTeams(rows []teamRecord) ([]team.Team, error) {
	out := make([]team.Team, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		if err := l.validator.Struct(row); err != nil {
			return nil, crerr.Wrapf(err, "%s entry %d", TeamsFile, i)
		}
		item := row.toDomain()
		if err := item.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "%s entry %d", TeamsFile, i)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, crerr.Newf("%s: duplicate team id %q", TeamsFile, item.ID)
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}

func (l *Loader) mapSeasons(rows []seasonRecord) ([]season.Season, error) {
	out := make([]season.Season, 0, len(rows))
	for i, row := range rows {
		if err := l.validator.Struct(row); err != nil {
			return nil, crerr.Wrapf(err, "%s entry %d", HistoryFile, i)
		}
		item := row.toDomain()
		if err := item.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "%s entry %d", HistoryFile, i)
		}
		out = append(out, item)
	}
	return out, nil
}

// warnUnknownTeams logs results whose team id is missing from the directory.
// Such rows stay in the history and display the raw id.
func (l *Loader) warnUnknownTeams(ctx context.Context, teams []team.Team, seasons []season.Season) {
	directory := team.NewDirectory(teams)
	for _, s := range seasons {
		for _, r := range s.Results {
			if _, ok := directory[r.TeamID]; ok {
				continue
			}
			l.logger.WarnContext(ctx, "result references unknown team",
				"team_id", r.TeamID,
				"year", s.Year,
				"league", string(s.League),
			)
		}
	}
}
