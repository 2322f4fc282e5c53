package main

import (
	"context"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/careerpath-labs/jobengine/internal/config"
	"github.com/careerpath-labs/jobengine/internal/mcp"
	"github.com/careerpath-labs/jobengine/pkg/logging"
	"github.com/careerpath-labs/jobengine/pkg/shutdown"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.InitializeResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = res.Close(ctx)
	}()

	srv := mcp.NewServer(logger, cfg, res)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("job aggregation server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}
