package games

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/domain/teams"
	"github.com/gridironsim/playsim/internal/logging"
	"github.com/gridironsim/playsim/internal/metrics"
	"github.com/gridironsim/playsim/internal/sim"
	"github.com/gridironsim/playsim/internal/sim/rng"
	"github.com/gridironsim/playsim/internal/timeutil"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id string) (domaingames.Game, bool)
	SaveGame(game domaingames.Game)
	SetGames(games []domaingames.Game)
}

// RosterSource supplies depth charts for the teams being simulated.
type RosterSource interface {
	FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error)
}

// SnapshotWriter persists finished games to disk, keyed by date.
type SnapshotWriter interface {
	WriteGamesSnapshot(date string, snapshot domaingames.TodayResponse) error
}

// Mirror replicates finished games to an external cache.
type Mirror interface {
	WriteGame(ctx context.Context, game domaingames.Game) error
}

// Options carries the optional collaborators of the games service.
type Options struct {
	Recorder  *metrics.Recorder
	Snapshots SnapshotWriter
	Mirror    Mirror
	Logger    *slog.Logger

	// DefaultSeed, when non-zero, is used for requests that do not carry
	// their own seed. Zero keeps seeding from entropy.
	DefaultSeed uint64
}

// Service coordinates game simulation and retrieval.
type Service struct {
	store     Store
	engine    *sim.Engine
	rosters   RosterSource
	recorder  *metrics.Recorder
	snapshots SnapshotWriter
	mirror    Mirror
	logger    *slog.Logger

	defaultSeed uint64
}

// NewService constructs a Service around a Store, the play engine, and a
// roster source.
func NewService(store Store, engine *sim.Engine, rosters RosterSource, opts Options) *Service {
	return &Service{
		store:     store,
		engine:    engine,
		rosters:   rosters,
		recorder:  opts.Recorder,
		snapshots: opts.Snapshots,
		mirror:    opts.Mirror,
		logger:    opts.Logger,

		defaultSeed: opts.DefaultSeed,
	}
}

// SimulateRequest describes one game to simulate. A zero Seed means a fresh
// random seed; the seed used is recorded on the game so any run can be
// replayed.
type SimulateRequest struct {
	HomeTeam   teams.Team
	AwayTeam   teams.Team
	Seed       uint64
	Season     string
	Week       int
	Postseason bool
	Primetime  bool
	Weather    plays.Weather
	CrowdNoise float64
}

// SimulateGame runs one full game through the play engine and persists the
// result.
func (s *Service) SimulateGame(ctx context.Context, req SimulateRequest) (domaingames.Game, error) {
	start := time.Now()

	game, err := s.simulate(ctx, req)
	s.recorder.RecordGame(time.Since(start), err)
	if err != nil {
		return domaingames.Game{}, err
	}

	s.store.SaveGame(game)
	s.publish(ctx, game)

	if s.logger != nil {
		s.logger.Info("game simulated",
			slog.String(logging.FieldGameID, game.ID),
			slog.Int("home_score", game.Score.Home),
			slog.Int("away_score", game.Score.Away),
			slog.Uint64(logging.FieldSeed, game.Meta.Seed),
			slog.Int("plays", len(game.PlayLog)),
		)
	}
	return game, nil
}

func (s *Service) simulate(ctx context.Context, req SimulateRequest) (domaingames.Game, error) {
	if req.HomeTeam.ID == "" || req.AwayTeam.ID == "" {
		return domaingames.Game{}, fmt.Errorf("both teams required")
	}
	if req.HomeTeam.ID == req.AwayTeam.ID {
		return domaingames.Game{}, fmt.Errorf("a team cannot play itself")
	}

	home, err := s.rosters.FetchRoster(ctx, req.HomeTeam.ID)
	if err != nil {
		return domaingames.Game{}, fmt.Errorf("fetching roster for %s: %w", req.HomeTeam.ID, err)
	}
	away, err := s.rosters.FetchRoster(ctx, req.AwayTeam.ID)
	if err != nil {
		return domaingames.Game{}, fmt.Errorf("fetching roster for %s: %w", req.AwayTeam.ID, err)
	}

	seed := req.Seed
	if seed == 0 {
		seed = s.defaultSeed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	weather := req.Weather
	if weather == "" || req.HomeTeam.DomeStadium {
		weather = plays.WeatherClear
	}
	crowd := req.CrowdNoise
	if crowd <= 0 {
		crowd = 0.5
	}

	game := domaingames.Game{
		ID:        uuid.NewString(),
		Provider:  "sim",
		HomeTeam:  req.HomeTeam,
		AwayTeam:  req.AwayTeam,
		StartTime: time.Now().UTC().Format(time.RFC3339),
		Status:    domaingames.StatusInProgress,
		Meta: domaingames.GameMeta{
			Season:     req.Season,
			Week:       req.Week,
			Postseason: req.Postseason,
			Seed:       seed,
		},
	}

	loop := &gameLoop{
		engine:     s.engine,
		src:        rng.New(seed),
		logger:     s.logger,
		recorder:   s.recorder,
		game:       game,
		homeRoster: home,
		awayRoster: away,
		weather:    weather,
		crowdNoise: crowd,
		primetime:  req.Primetime,
	}
	return loop.run(), nil
}

// SimulatePending plays out every stored game whose scheduled start has
// passed, returning how many were simulated.
func (s *Service) SimulatePending(ctx context.Context, now time.Time) (int, error) {
	simulated := 0
	for _, game := range s.store.ListGames() {
		if game.Status != domaingames.StatusScheduled {
			continue
		}
		startAt, err := time.Parse(time.RFC3339, game.StartTime)
		if err == nil && startAt.After(now) {
			continue
		}

		req := SimulateRequest{
			HomeTeam:   game.HomeTeam,
			AwayTeam:   game.AwayTeam,
			Seed:       game.Meta.Seed,
			Season:     game.Meta.Season,
			Week:       game.Meta.Week,
			Postseason: game.Meta.Postseason,
		}
		start := time.Now()
		played, err := s.simulate(ctx, req)
		s.recorder.RecordGame(time.Since(start), err)
		if err != nil {
			return simulated, fmt.Errorf("simulating game %s: %w", game.ID, err)
		}

		// Keep the schedule identity on the freshly simulated game.
		played.ID = game.ID
		played.StartTime = game.StartTime
		s.store.SaveGame(played)
		s.publish(ctx, played)
		simulated++
	}
	return simulated, nil
}

// publish mirrors and snapshots a finished game. Both sinks are best-effort:
// the store copy is already durable for this process.
func (s *Service) publish(ctx context.Context, game domaingames.Game) {
	if s.mirror != nil {
		if err := s.mirror.WriteGame(ctx, game); err != nil && s.logger != nil {
			s.logger.Warn("mirror write failed",
				slog.String(logging.FieldGameID, game.ID),
				slog.Any("err", err),
			)
		}
	}
	if s.snapshots != nil {
		date := timeutil.FormatDate(time.Now().UTC())
		snapshot := domaingames.NewTodayResponse(date, s.finalGames())
		if err := s.snapshots.WriteGamesSnapshot(date, snapshot); err != nil && s.logger != nil {
			s.logger.Warn("snapshot write failed",
				slog.String(logging.FieldGameID, game.ID),
				slog.Any("err", err),
			)
		}
	}
}

func (s *Service) finalGames() []domaingames.Game {
	var finals []domaingames.Game
	for _, g := range s.store.ListGames() {
		if g.Status == domaingames.StatusFinal {
			finals = append(finals, g)
		}
	}
	return finals
}

// Games returns the current set of games.
func (s *Service) Games() []domaingames.Game {
	return s.store.ListGames()
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// ReplaceGames swaps the stored games with a new snapshot.
func (s *Service) ReplaceGames(games []domaingames.Game) {
	s.store.SetGames(games)
}

// ScheduleGame registers a game for the scheduler to simulate when its
// start time passes.
func (s *Service) ScheduleGame(home, away teams.Team, startTime time.Time, meta domaingames.GameMeta) domaingames.Game {
	game := domaingames.Game{
		ID:        uuid.NewString(),
		Provider:  "sim",
		HomeTeam:  home,
		AwayTeam:  away,
		StartTime: startTime.UTC().Format(time.RFC3339),
		Status:    domaingames.StatusScheduled,
		Meta:      meta,
	}
	s.store.SaveGame(game)
	return game
}
