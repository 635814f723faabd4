package app

import (
	"context"
	"fmt"
	"log/slog"
	httpserver "transactions-api/internal/app/http-server"
	"transactions-api/internal/config"
	"transactions-api/internal/handlers"
	"transactions-api/internal/middlewares"
	"transactions-api/internal/repository/postgres"
	"transactions-api/internal/repository/sqlite"
	"transactions-api/internal/routes"
	"transactions-api/internal/services"
)

type App struct {
	HTTPServer *httpserver.Server
	Storage    Storage
}

type Storage interface {
	services.TransactionRepository
	Migrate(ctx context.Context) error
	Close() error
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storage := mustOpenStorage(cfg)

	if err := storage.Migrate(context.Background()); err != nil {
		panic(err)
	}

	transactionService := services.NewTransactionService(log, storage)
	transactionHandler := handlers.NewTransactionHandler(log, transactionService)

	sessionMiddleware := middlewares.NewSessionMiddleware()

	r := routes.InitRoutes(transactionHandler, sessionMiddleware)

	server := httpserver.NewServer(log, fmt.Sprintf(":%d", cfg.Server.Port), r)

	return &App{
		HTTPServer: server,
		Storage:    storage,
	}
}

func mustOpenStorage(cfg *config.Config) Storage {
	switch cfg.Database.Client {
	case config.ClientPostgres:
		storage, err := postgres.NewPostgres(context.Background(), cfg.Database.URL)
		if err != nil {
			panic(err)
		}
		return storage
	default:
		storage, err := sqlite.NewSQLite(cfg.Database.URL)
		if err != nil {
			panic(err)
		}
		return storage
	}
}
