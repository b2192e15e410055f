package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mwren/craftcost/internal/client"
	"github.com/mwren/craftcost/internal/config"
	"github.com/mwren/craftcost/internal/index"
	"github.com/mwren/craftcost/internal/pricing"
	"github.com/mwren/craftcost/internal/profit"
	"github.com/mwren/craftcost/internal/resolver"
	"github.com/mwren/craftcost/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info("Starting craftcost", "version", version, "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := client.New(client.Config{
		BaseURL:   cfg.APIBaseURL,
		Token:     cfg.APIToken,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})

	slog.Info("Building reference snapshot", "by_character", cfg.ByCharacter)
	idx, err := index.Build(ctx, c, index.BuildOptions{
		ByCharacter: cfg.ByCharacter,
		Offerings:   pricing.DefaultOfferings,
	})
	if err != nil {
		slog.Error("Failed to build reference snapshot", "error", err)
		os.Exit(1)
	}

	catalog := pricing.Default()
	resolverService := resolver.NewService(idx, catalog)
	profitService := profit.NewService(idx, catalog, cfg.FeePercent)

	srv := server.NewServer(cfg.Port, idx, resolverService, profitService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
