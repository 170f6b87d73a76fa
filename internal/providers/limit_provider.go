package providers

import (
	"context"
	"time"

	"log/slog"

	"github.com/gridironsim/playsim/internal/domain/players"
)

// rateLimitedProvider wraps a RosterProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     RosterProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a RosterProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next RosterProvider, interval time.Duration, logger *slog.Logger) RosterProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	if p == nil || p.next == nil {
		var logger *slog.Logger
		if p != nil {
			logger = p.logger
		}
		logWithProvider(ctx, logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "rate-limited roster fetch", slog.String("team_id", teamID))
	return p.next.FetchRoster(ctx, teamID)
}
