package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gridironsim/playsim/internal/app/games"
	playersapp "github.com/gridironsim/playsim/internal/app/players"
	teamsapp "github.com/gridironsim/playsim/internal/app/teams"
	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/scheduler"
	"github.com/gridironsim/playsim/internal/snapshots"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the app services.
type Handler struct {
	games    *games.Service
	teams    *teamsapp.Service
	players  *playersapp.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() scheduler.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(gamesSvc *games.Service, teamsSvc *teamsapp.Service, playersSvc *playersapp.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() scheduler.Status) *Handler {
	return &Handler{
		games:    gamesSvc,
		teams:    teamsSvc,
		players:  playersSvc,
		snaps:    snaps,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the scheduler's recent health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Games returns stored games, or a dated snapshot when ?date= is given.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	dateParam := r.URL.Query().Get("date")
	logger := loggerFromContext(r, h.logger)

	if dateParam != "" {
		if _, err := time.Parse("2006-01-02", dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		if h.snaps == nil {
			writeError(w, r, nethttp.StatusBadGateway, "snapshot store not configured", h.logger)
			return
		}
		snap, err := h.snaps.LoadGames(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusNotFound, "no snapshot for date", h.logger)
			return
		}
		if logger != nil {
			logger.Info("served snapshot games", "date", snap.Date, "count", len(snap.Games))
		}
		writeJSON(w, nethttp.StatusOK, snap, h.logger)
		return
	}

	list := h.games.Games()
	payload := domaingames.NewTodayResponse(h.now().Format("2006-01-02"), list)
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.games.GameByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

type simulateGameRequest struct {
	HomeTeamID string  `json:"homeTeamId"`
	AwayTeamID string  `json:"awayTeamId"`
	Seed       uint64  `json:"seed,omitempty"`
	Season     string  `json:"season,omitempty"`
	Week       int     `json:"week,omitempty"`
	Postseason bool    `json:"postseason,omitempty"`
	Primetime  bool    `json:"primetime,omitempty"`
	Weather    string  `json:"weather,omitempty"`
	CrowdNoise float64 `json:"crowdNoise,omitempty"`
}

// SimulateGame plays a full game between two stored teams and returns the
// final game with its box score and play log.
func (h *Handler) SimulateGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req simulateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	home, ok := h.teams.TeamByID(req.HomeTeamID)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "home team not found", h.logger)
		return
	}
	away, ok := h.teams.TeamByID(req.AwayTeamID)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "away team not found", h.logger)
		return
	}

	weather, err := parseWeather(req.Weather)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.CrowdNoise < 0 || req.CrowdNoise > 1 {
		writeError(w, r, nethttp.StatusBadRequest, "crowdNoise must be between 0 and 1", h.logger)
		return
	}

	game, err := h.games.SimulateGame(r.Context(), games.SimulateRequest{
		HomeTeam:   home,
		AwayTeam:   away,
		Seed:       req.Seed,
		Season:     req.Season,
		Week:       req.Week,
		Postseason: req.Postseason,
		Primetime:  req.Primetime,
		Weather:    weather,
		CrowdNoise: req.CrowdNoise,
	})
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Error("simulate game failed", "error", err)
		}
		writeError(w, r, nethttp.StatusInternalServerError, "simulation failed", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

type scheduleGameRequest struct {
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	StartTime  string `json:"startTime"`
	Season     string `json:"season,omitempty"`
	Week       int    `json:"week,omitempty"`
	Postseason bool   `json:"postseason,omitempty"`
	Seed       uint64 `json:"seed,omitempty"`
}

// ScheduleGame stores a scheduled game; the scheduler simulates it once its
// start time passes.
func (h *Handler) ScheduleGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req scheduleGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	home, ok := h.teams.TeamByID(req.HomeTeamID)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "home team not found", h.logger)
		return
	}
	away, ok := h.teams.TeamByID(req.AwayTeamID)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "away team not found", h.logger)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid startTime (expected RFC3339)", h.logger)
		return
	}

	game := h.games.ScheduleGame(home, away, startTime, domaingames.GameMeta{
		Season:     req.Season,
		Week:       req.Week,
		Postseason: req.Postseason,
		Seed:       req.Seed,
	})
	writeJSON(w, nethttp.StatusCreated, game, h.logger)
}

// Teams returns all known teams.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.teams.Teams(), h.logger)
}

// TeamByID returns a specific team.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	team, ok := h.teams.TeamByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// Roster returns a team's depth chart.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	roster, ok := h.players.Roster(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "roster not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, roster, h.logger)
}

// PlayerByID returns a single player across all rosters.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	player, ok := h.players.PlayerByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

func parseWeather(raw string) (plays.Weather, error) {
	switch plays.Weather(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return "", nil
	case plays.WeatherClear:
		return plays.WeatherClear, nil
	case plays.WeatherRain:
		return plays.WeatherRain, nil
	case plays.WeatherSnow:
		return plays.WeatherSnow, nil
	case plays.WeatherWind:
		return plays.WeatherWind, nil
	}
	return "", errors.New("invalid weather (expected clear, rain, snow, or wind)")
}
