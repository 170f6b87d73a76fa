package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type simStats struct {
	plays      int
	penalties  int
	touchdowns int
	turnovers  int
	games      int
}

// Recorder captures lightweight, in-memory metrics about simulations and
// provider calls. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	sim   simStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordPlay counts one simulated play with its headline outcome facts.
func (r *Recorder) RecordPlay(playType, outcome string, duration time.Duration, penalty, touchdown, turnover bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.sim.plays++
	if penalty {
		r.sim.penalties++
	}
	if touchdown {
		r.sim.touchdowns++
	}
	if turnover {
		r.sim.turnovers++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPlay(playType, outcome, duration, penalty, touchdown, turnover)
	}
}

// RecordGame counts one fully simulated game.
func (r *Recorder) RecordGame(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.sim.games++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGame(duration, err)
	}
}

// PlaysSimulated returns the total plays recorded.
func (r *Recorder) PlaysSimulated() int { return r.simSnapshot().plays }

// PenaltiesThrown returns the total plays that drew a flag.
func (r *Recorder) PenaltiesThrown() int { return r.simSnapshot().penalties }

// Touchdowns returns the total touchdowns recorded.
func (r *Recorder) Touchdowns() int { return r.simSnapshot().touchdowns }

// Turnovers returns the total turnovers recorded.
func (r *Recorder) Turnovers() int { return r.simSnapshot().turnovers }

// GamesSimulated returns the total games recorded.
func (r *Recorder) GamesSimulated() int { return r.simSnapshot().games }

func (r *Recorder) simSnapshot() simStats {
	if r == nil {
		return simStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordSchedulerCycle tracks background scheduler cycles and errors.
func (r *Recorder) RecordSchedulerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordScheduler(duration, err)
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
