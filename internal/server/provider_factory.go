package server

import (
	"log/slog"
	"time"

	"github.com/gridironsim/playsim/internal/config"
	"github.com/gridironsim/playsim/internal/metrics"
	"github.com/gridironsim/playsim/internal/providers"
)

// dataProvider recombines a team source with a wrapped roster source so the
// decorators only sit on the hot per-team path.
type dataProvider struct {
	providers.TeamProvider
	providers.RosterProvider

	closer interface{ Close() }
}

// Close stops any rate-limit ticker held by the roster chain.
func (d dataProvider) Close() {
	if d.closer != nil {
		d.closer.Close()
	}
}

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)

	rosters := providers.RosterProvider(base)
	var closer interface{ Close() }
	if cfg.Provider == "league" {
		// Remote rosters respect upstream quota; local fixtures never wait.
		limited := providers.NewRateLimitedProvider(rosters, time.Second, f.logger)
		if c, ok := limited.(interface{ Close() }); ok {
			closer = c
		}
		rosters = limited
	}
	rosters = providers.NewRetryingProvider(rosters, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)

	return dataProvider{TeamProvider: base, RosterProvider: rosters, closer: closer}
}
