package server

import (
	"log/slog"

	"github.com/gridironsim/playsim/internal/config"
	"github.com/gridironsim/playsim/internal/providers"
	"github.com/gridironsim/playsim/internal/providers/fixture"
	"github.com/gridironsim/playsim/internal/providers/league"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "league":
		return league.NewClient(league.Config{
			BaseURL: cfg.League.BaseURL,
			APIKey:  cfg.League.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
