// Package server initializes and runs the application: it wires the
// database, repositories, services and the HTTP server, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"portrussell/internal/logging"
	"portrussell/internal/server/config"
	"portrussell/internal/server/httpserver"
	"portrussell/internal/server/repositories/repomanager"
	"portrussell/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	server      *httpserver.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return nil, fmt.Errorf("repository init error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	cs := services.NewCatwayService(db, rm)
	rs := services.NewReservationService(db, rm)
	ps := services.NewPhotoService(db, rm, cfg)

	srv, err := httpserver.NewServer(cfg, logger, us, cs, rs, ps)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, db: db, repomanager: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing db failed", "error", err)
		}
	}()

	return app.server.Run(ctx)
}
