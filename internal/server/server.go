package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gridironsim/playsim/internal/app/games"
	"github.com/gridironsim/playsim/internal/app/players"
	"github.com/gridironsim/playsim/internal/app/teams"
	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/config"
	httpserver "github.com/gridironsim/playsim/internal/http"
	"github.com/gridironsim/playsim/internal/http/handlers"
	"github.com/gridironsim/playsim/internal/logging"
	"github.com/gridironsim/playsim/internal/metrics"
	"github.com/gridironsim/playsim/internal/providers"
	"github.com/gridironsim/playsim/internal/scheduler"
	"github.com/gridironsim/playsim/internal/sim"
	"github.com/gridironsim/playsim/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	gamesService   *games.Service
	teamsService   *teams.Service
	playersService *players.Service
	provider       providers.DataProvider
	httpServer     httpServer
	metricsServer  httpServer
	scheduler      Scheduler
	redisClient    *redis.Client
	metricsStop    func(context.Context) error
}

// New constructs a server with default provider and scheduler wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		return nil, err
	}

	snaps := buildSnapshots(cfg)

	var redisClient *redis.Client
	var mirror games.Mirror
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		mirror = store.NewRedisStore(redisClient)
	}

	memoryStore := store.NewMemoryStore()
	gameSvc := games.NewService(memoryStore, engine, provider, games.Options{
		Recorder:    recorder,
		Snapshots:   snapshotWriter(snaps),
		Mirror:      mirror,
		Logger:      logger,
		DefaultSeed: uint64(cfg.SimSeed),
	})
	teamSvc := teams.NewService(memoryStore)
	playerSvc := players.NewService(memoryStore)

	sched := scheduler.New(gameSvc, logger, recorder, time.Duration(cfg.SimInterval))
	httpSrv := buildHTTPServer(cfg, gameSvc, teamSvc, playerSvc, snaps, provider, logger, recorder, sched)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		gamesService:   gameSvc,
		teamsService:   teamSvc,
		playersService: playerSvc,
		provider:       provider,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		scheduler:      sched,
		redisClient:    redisClient,
		metricsStop:    metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, gameSvc *games.Service, httpSrv httpServer, sched Scheduler) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		gamesService: gameSvc,
		httpServer:   httpSrv,
		scheduler:    sched,
	}
}

func buildEngine(cfg config.Config, logger *slog.Logger) (*sim.Engine, error) {
	tables := balance.Default()
	if cfg.BalancePath != "" {
		loaded, err := balance.Load(cfg.BalancePath)
		if err != nil {
			return nil, fmt.Errorf("loading balance tables: %w", err)
		}
		tables = loaded
	}
	return sim.New(tables, logger), nil
}

func snapshotWriter(snaps snapshotComponents) games.SnapshotWriter {
	if snaps.writer == nil {
		return nil
	}
	return snaps.writer
}

func buildHTTPServer(cfg config.Config, gameSvc *games.Service, teamSvc *teams.Service, playerSvc *players.Service, snaps snapshotComponents, provider providers.DataProvider, logger *slog.Logger, recorder *metrics.Recorder, sched Scheduler) httpServer {
	var statusFn func() scheduler.Status
	if cfg.Scheduler && sched != nil {
		statusFn = sched.Status
	}

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(gameSvc, teamSvc, playerSvc, snaps.store, logger, statusFn)

	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(snaps.writer, gameSvc, teamSvc, provider, playerSvc, cfg.Snapshots.AdminToken, logger)
	}

	router := httpserver.NewRouter(handler, admin, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers plus the background scheduler, then
// waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.seedStore(ctx)
	if s.cfg.Scheduler && s.scheduler != nil {
		s.scheduler.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// seedStore loads teams and depth charts from the configured provider so the
// read endpoints work before any game has been simulated.
func (s *Server) seedStore(ctx context.Context) {
	if s.provider == nil || s.teamsService == nil {
		return
	}

	teamList, err := s.provider.FetchTeams(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("seeding teams failed", "error", err)
		}
		return
	}
	s.teamsService.ReplaceTeams(teamList)

	for _, team := range teamList {
		roster, err := s.provider.FetchRoster(ctx, team.ID)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("seeding roster failed", slog.String(logging.FieldTeam, team.ID), "error", err)
			}
			continue
		}
		s.playersService.ReplaceRoster(team.ID, roster)
	}

	if s.logger != nil {
		s.logger.Info("store seeded", slog.Int(logging.FieldCount, len(teamList)))
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.scheduler != nil {
		if err := s.scheduler.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop scheduler", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.provider.(interface{ Close() }); ok {
		rl.Close()
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil && s.logger != nil {
			s.logger.Warn("redis close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
