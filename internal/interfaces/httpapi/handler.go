package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/riskibarqy/league-history/internal/platform/logging"
	"github.com/riskibarqy/league-history/internal/usecase"
)

type Handler struct {
	leaderboardService *usecase.LeaderboardService
	historyService     *usecase.HistoryService
	summaryService     *usecase.TeamSummaryService
	presenter          Presenter
	logger             *logging.Logger
}

func NewHandler(
	leaderboardService *usecase.LeaderboardService,
	historyService *usecase.HistoryService,
	summaryService *usecase.TeamSummaryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leaderboardService: leaderboardService,
		historyService:     historyService,
		summaryService:     summaryService,
		presenter:          NewPresenter(),
		logger:             logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboards")
	defer span.End()

	boards, err := h.leaderboardService.ListBoards(ctx)
	if err != nil {
		h.logFailure(ctx, "list leaderboards failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.presenter.Leaderboards(boards))
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHistory")
	defer span.End()

	history, err := h.historyService.ListHistory(ctx)
	if err != nil {
		h.logFailure(ctx, "list history failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.presenter.History(history, h.historyService.FootnoteYears()))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.historyService.ListTeams(ctx)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.presenter.Teams(teams))
}

func (h *Handler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSummary")
	defer span.End()

	teamID := r.PathValue("teamID")
	filter := r.URL.Query().Get("league")

	page, err := h.summaryService.GetPage(ctx, teamID, filter)
	if err != nil {
		h.logFailure(ctx, "get team summary failed", err, "team_id", teamID, "league", filter)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.presenter.TeamPage(page))
}

// logFailure logs client errors at warn level and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, usecase.ErrInvalidInput) || errors.Is(err, usecase.ErrNotFound) {
		h.logger.WarnContext(ctx, msg, args...)
		return
	}
	h.logger.ErrorContext(ctx, msg, args...)
}
