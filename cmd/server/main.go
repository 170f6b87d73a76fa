package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridironsim/playsim/internal/config"
	"github.com/gridironsim/playsim/internal/logging"
	"github.com/gridironsim/playsim/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "playsim",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("server startup failed", "error", err)
		stop()
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
