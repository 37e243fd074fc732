package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-history/internal/config"
	"github.com/riskibarqy/league-history/internal/domain/leaderboard"
	"github.com/riskibarqy/league-history/internal/domain/teamsummary"
	"github.com/riskibarqy/league-history/internal/infrastructure/dataset"
	"github.com/riskibarqy/league-history/internal/infrastructure/filestore"
	"github.com/riskibarqy/league-history/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-history/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-history/internal/platform/cache"
	"github.com/riskibarqy/league-history/internal/platform/logging"
	"github.com/riskibarqy/league-history/internal/usecase"
)

// Services holds the use cases shared by the API and the exporter.
type Services struct {
	Leaderboards *usecase.LeaderboardService
	History      *usecase.HistoryService
	Summaries    *usecase.TeamSummaryService
}

// NewServices loads the dataset once and wires the read-only repositories.
// An empty DATA_DIR serves the built-in demo league.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	data := dataset.Dataset{Teams: memory.SeedTeams(), Seasons: memory.SeedSeasons()}
	if cfg.DataDir == "" {
		logger.WarnContext(ctx, "DATA_DIR is empty, serving demo dataset")
	} else {
		loaded, err := dataset.NewLoader(cfg.DataDir, logger).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: load dataset: %v", usecase.ErrDependencyUnavailable, err)
		}
		data = loaded
	}
	logger.InfoContext(ctx, "dataset ready",
		"data_dir", cfg.DataDir,
		"teams", len(data.Teams),
		"seasons", len(data.Seasons),
	)

	teamRepo := memory.NewTeamRepository(data.Teams)
	seasonRepo := memory.NewSeasonRepository(data.Seasons)

	var boardCache *cache.Store[[]leaderboard.Board]
	var pageCache *cache.Store[teamsummary.Page]
	if cfg.CacheEnabled {
		boardCache = cache.NewStore[[]leaderboard.Board](cfg.CacheTTL)
		pageCache = cache.NewStore[teamsummary.Page](cfg.CacheTTL)
	}

	return &Services{
		Leaderboards: usecase.NewLeaderboardService(seasonRepo, teamRepo, boardCache),
		History:      usecase.NewHistoryService(seasonRepo, teamRepo, cfg.HistoryFootnoteYears),
		Summaries:    usecase.NewTeamSummaryService(seasonRepo, teamRepo, pageCache),
	}, nil
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	services, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(services.Leaderboards, services.History, services.Summaries, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// NewExporter wires the static export into cfg.ExportDir.
func NewExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.ExportService, error) {
	if cfg.ExportDir == "" {
		return nil, fmt.Errorf("export dir cannot be empty")
	}

	services, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return usecase.NewExportService(
		services.Leaderboards,
		services.History,
		services.Summaries,
		httpapi.NewPresenter(),
		filestore.NewStore(cfg.ExportDir),
		cfg.ExportWorkers,
		logger,
	), nil
}
