package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gridironsim/playsim/internal/logging"
	"github.com/gridironsim/playsim/internal/metrics"
)

const defaultInterval = 30 * time.Second

// Simulator plays out whatever games are due. Implemented by the games
// service.
type Simulator interface {
	SimulatePending(ctx context.Context, now time.Time) (int, error)
}

// Scheduler ticks on an interval and simulates every scheduled game whose
// start time has passed.
type Scheduler struct {
	sim      Simulator
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the scheduler loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the scheduler has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Scheduler with sane defaults.
func New(sim Simulator, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		sim:      sim,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins the tick loop until the context is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.interval)

	go func() {
		s.logInfo("scheduler started", slog.Int64(logging.FieldDurationMS, s.interval.Milliseconds()))
		// Initial pass so due games play immediately on boot.
		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				s.stopTicker()
				s.logInfo("scheduler stopped")
				return
			case <-s.done:
				s.stopTicker()
				s.logInfo("scheduler stopped")
				return
			case <-s.ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the tick loop.
func (s *Scheduler) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		s.stopTicker()
	})
	return nil
}

func (s *Scheduler) runOnce(ctx context.Context) {
	start := time.Now()
	s.recordAttempt(start)

	played, err := s.sim.SimulatePending(ctx, s.now())
	if s.metrics != nil {
		s.metrics.RecordSchedulerCycle(time.Since(start), err)
	}
	if err != nil {
		s.logError("scheduler cycle failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		s.recordFailure(err, start)
		return
	}

	s.recordSuccess(start)
	if played > 0 {
		s.logInfo("scheduler simulated games",
			logging.FieldCount, played,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
	}
}

func (s *Scheduler) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Scheduler) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Scheduler) logError(msg string, err error, attrs ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
