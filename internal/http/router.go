package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridironsim/playsim/internal/http/handlers"
	"github.com/gridironsim/playsim/internal/http/middleware"
	"github.com/gridironsim/playsim/internal/metrics"
)

// NewRouter registers all routes. The admin handler is optional; its routes
// are mounted only when it is configured.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.Logging(logger, recorder, next)
	})

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)

	r.Route("/games", func(r chi.Router) {
		r.Get("/", h.Games)
		r.Post("/simulate", h.SimulateGame)
		r.Post("/schedule", h.ScheduleGame)
		r.Get("/{id}", h.GameByID)
	})

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Teams)
		r.Get("/{id}", h.TeamByID)
		r.Get("/{id}/roster", h.Roster)
	})

	r.Get("/players/{id}", h.PlayerByID)

	if admin != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Post("/snapshots/refresh", admin.RefreshSnapshots)
			r.Post("/rosters/refresh", admin.RefreshRosters)
		})
	}

	return r
}
