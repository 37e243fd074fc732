package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-history/internal/domain/leaderboard"
	"github.com/riskibarqy/league-history/internal/domain/season"
	"github.com/riskibarqy/league-history/internal/domain/team"
	"github.com/riskibarqy/league-history/internal/domain/teamsummary"
	"github.com/riskibarqy/league-history/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

const (
	ExportLeaderboardsFile = "leaderboards.json"
	ExportHistoryFile      = "history.json"
	ExportTeamsFile        = "teams.json"
	exportTeamsDir         = "teams"
)

// ViewRenderer turns view-models into the documents served over HTTP and
// written by the static export.
type ViewRenderer interface {
	Leaderboards(boards []leaderboard.Board) any
	History(seasons []season.HistorySeason, footnoteYears []int) any
	Teams(teams []team.Team) any
	TeamPage(page teamsummary.Page) any
}

// ExportWriter stores one rendered document at a slash separated path.
type ExportWriter interface {
	Write(rel string, body []byte) error
}

type ExportResult struct {
	Files    []string
	Duration time.Duration
}

type ExportService struct {
	leaderboards *LeaderboardService
	history      *HistoryService
	summaries    *TeamSummaryService
	renderer     ViewRenderer
	writer       ExportWriter
	workers      int
	logger       *logging.Logger
}

func NewExportService(
	leaderboards *LeaderboardService,
	history *HistoryService,
	summaries *TeamSummaryService,
	renderer ViewRenderer,
	writer ExportWriter,
	workers int,
	logger *logging.Logger,
) *ExportService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ExportService{
		leaderboards: leaderboards,
		history:      history,
		summaries:    summaries,
		renderer:     renderer,
		writer:       writer,
		workers:      workers,
		logger:       logger,
	}
}

// TeamPagePath is where the page for teamID rendered with filter is stored.
func TeamPagePath(teamID string, filter teamsummary.Filter) string {
	return path.Join(exportTeamsDir, teamID, string(filter)+".json")
}

// Export renders every view and writes it through the writer. Team pages
// are rendered on a worker pool; all write failures are reported together.
func (s *ExportService) Export(ctx context.Context) (ExportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.Export")
	defer span.End()

	started := time.Now()
	if s.renderer == nil || s.writer == nil {
		return ExportResult{}, fmt.Errorf("%w: export renderer and writer are required", ErrDependencyUnavailable)
	}

	boards, err := s.leaderboards.ListBoards(ctx)
	if err != nil {
		return ExportResult{}, fmt.Errorf("build leaderboards: %w", err)
	}
	history, err := s.history.ListHistory(ctx)
	if err != nil {
		return ExportResult{}, fmt.Errorf("build history: %w", err)
	}
	teams, err := s.history.ListTeams(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	files := make([]string, 0, 3+len(teams)*len(teamsummary.AllFilters()))
	for _, doc := range []struct {
		rel  string
		body any
	}{
		{rel: ExportLeaderboardsFile, body: s.renderer.Leaderboards(boards)},
		{rel: ExportHistoryFile, body: s.renderer.History(history, s.history.FootnoteYears())},
		{rel: ExportTeamsFile, body: s.renderer.Teams(teams)},
	} {
		if err := s.writeDocument(doc.rel, doc.body); err != nil {
			return ExportResult{}, err
		}
		files = append(files, doc.rel)
	}

	pageFiles, err := s.exportTeamPages(ctx, teams)
	files = append(files, pageFiles...)
	sort.Strings(files)
	result := ExportResult{Files: files, Duration: time.Since(started)}
	if err != nil {
		return result, err
	}

	s.logger.InfoContext(ctx, "export completed",
		"files", len(files),
		"workers", s.workers,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

func (s *ExportService) exportTeamPages(ctx context.Context, teams []team.Team) ([]string, error) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		files  []string
		errs   []error
		wg     sync.WaitGroup
		record = func(rel string, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			files = append(files, rel)
		}
	)

	for _, member := range teams {
		for _, filter := range teamsummary.AllFilters() {
			member, filter := member, filter
			rel := TeamPagePath(member.ID, filter)
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()

				page, err := s.summaries.GetPage(ctx, member.ID, string(filter))
				if err != nil {
					s.logger.WarnContext(ctx, "render team page failed", "team_id", member.ID, "filter", string(filter), "error", err)
					record(rel, fmt.Errorf("render %s: %w", rel, err))
					return
				}
				record(rel, s.writeDocument(rel, s.renderer.TeamPage(page)))
			}); err != nil {
				wg.Done()
				record(rel, fmt.Errorf("submit %s to worker pool: %w", rel, err))
			}
		}
	}

	wg.Wait()
	return files, errors.Join(errs...)
}

func (s *ExportService) writeDocument(rel string, doc any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigDefault.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", rel, err)
	}
	if err := s.writer.Write(rel, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
