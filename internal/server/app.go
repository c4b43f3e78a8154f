// Package server initializes and runs the authentication backend: it loads
// configuration, opens the PostgreSQL store, applies migrations, and serves
// the HTTP API until the process is signalled to stop.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rbarroso/auth-backend/internal/logging"
	"github.com/rbarroso/auth-backend/internal/server/config"
	"github.com/rbarroso/auth-backend/internal/server/httpapi"
	"github.com/rbarroso/auth-backend/internal/server/login"
	"github.com/rbarroso/auth-backend/internal/server/storage"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      storage.RepositoryManager
	httpServer *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	store, err := storage.NewPostgresRepositoryManager(c.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	loginService := login.NewService(store.Credentials(), store.Sessions(), store.AccessRecords(), logger, c)
	httpServer := httpapi.NewServer(c, logger, loginService, store)

	return &App{config: c, logger: logger, store: store, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err)
	}
}
