// Package main двойник сервиса баллов для локальной разработки.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/loyalty-userapp/internal/app/pointstwin"
	"github.com/magabrotheeeer/loyalty-userapp/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting points-twin", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := pointstwin.New(cfg, logger).Run(ctx); err != nil {
		logger.Error("points-twin stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("points-twin stopped gracefully")
}
