package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/players"
	domainteams "github.com/gridironsim/playsim/internal/domain/teams"
	"github.com/gridironsim/playsim/internal/http/requestutil"
	"github.com/gridironsim/playsim/internal/logging"
	"github.com/gridironsim/playsim/internal/providers"
	"github.com/gridironsim/playsim/internal/snapshots"
	"github.com/gridironsim/playsim/internal/timeutil"
)

// GameLister exposes the finished games needed for snapshot refreshes.
type GameLister interface {
	Games() []domaingames.Game
}

// TeamLister exposes known teams for roster refreshes.
type TeamLister interface {
	Teams() []domainteams.Team
}

// RosterSink stores refreshed rosters.
type RosterSink interface {
	ReplaceRoster(teamID string, roster []*players.Player)
}

// AdminHandler exposes admin-only endpoints guarded by a bearer token.
type AdminHandler struct {
	writer  *snapshots.Writer
	games   GameLister
	teams   TeamLister
	rosters providers.RosterProvider
	sink    RosterSink
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, games GameLister, teams TeamLister, rosters providers.RosterProvider, sink RosterSink, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:  writer,
		games:   games,
		teams:   teams,
		rosters: rosters,
		sink:    sink,
		token:   token,
		logger:  logger,
	}
}

// RefreshSnapshots writes a snapshot of finished games for the requested date
// (defaults to today). Returns 401 if the token is missing or invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.writer == nil || h.games == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(time.Now())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin snapshot invalid date", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	finals := finalGames(h.games.Games())
	if len(finals) == 0 {
		logging.Warn(logger, "admin snapshot no games", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "no finished games to snapshot", logger)
		return
	}

	snap := domaingames.NewTodayResponse(date, finals)
	if err := h.writer.WriteGamesSnapshot(date, snap); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.String("date", date),
			slog.Int("count", len(finals)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":      date,
		"snapshots": len(finals),
		"status":    "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String("date", date),
		slog.Int("count", len(finals)),
	)
}

// RefreshRosters refetches every team's depth chart from the roster provider.
func (h *AdminHandler) RefreshRosters(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.rosters == nil || h.teams == nil || h.sink == nil {
		writeError(w, r, http.StatusServiceUnavailable, "roster provider not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	refreshed := 0
	for _, team := range h.teams.Teams() {
		roster, err := h.fetchRoster(r.Context(), team.ID)
		if err != nil {
			logging.Warn(logger, "admin roster refresh failed",
				slog.String(logging.FieldTeam, team.ID),
				slog.Any("err", err),
			)
			writeError(w, r, http.StatusBadGateway, "failed to fetch roster for "+team.ID, logger)
			return
		}
		h.sink.ReplaceRoster(team.ID, roster)
		refreshed++
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rosters": refreshed,
		"status":  "ok",
	}, logger)
	logging.Info(logger, "admin rosters refreshed", slog.Int(logging.FieldCount, refreshed))
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) fetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	return h.rosters.FetchRoster(ctx, teamID)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}

func finalGames(all []domaingames.Game) []domaingames.Game {
	finals := make([]domaingames.Game, 0, len(all))
	for _, g := range all {
		if g.Status == domaingames.StatusFinal {
			finals = append(finals, g)
		}
	}
	return finals
}
