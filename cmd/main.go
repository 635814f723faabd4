package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"transactions-api/internal/app"
	"transactions-api/internal/config"
)

func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.Info("Starting http",
		slog.String("env", cfg.Server.Env),
		slog.String("database_client", cfg.Database.Client),
	)

	application := app.New(log, cfg)

	go application.HTTPServer.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	sign := <-stop

	log.Info("Application stopped", slog.String("signal", sign.String()))

	if err := application.HTTPServer.Stop(context.Background()); err != nil {
		log.Error("failed to stop http server", slog.String("error", err.Error()))
	}

	if err := application.Storage.Close(); err != nil {
		log.Error("failed to close storage", slog.String("error", err.Error()))
	}
}
