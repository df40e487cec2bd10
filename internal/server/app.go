// Package server wires configuration, storage, services and the HTTP server
// into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/logging"
	"github.com/dmitrijs2005/electro/internal/server/config"
	"github.com/dmitrijs2005/electro/internal/server/httpserver"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/electro/internal/server/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	httpServer  *httpserver.HTTPServer
}

// openRepositories picks PostgreSQL when a DSN is configured and the
// in-memory store otherwise.
func openRepositories(ctx context.Context, c *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	collections := repomanager.Collections{Users: c.UsersCollection, CartItems: c.CartCollection}

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database DSN configured, data is kept in memory")
		return repomanager.NewMemoryRepositoryManager(collections), nil
	}

	db, err := docstore.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	m, err := repomanager.NewPostgresRepositoryManager(db, collections)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := m.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return m, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, logging.ParseLevel(c.LogLevel))
	gin.SetMode(gin.ReleaseMode)

	m, err := openRepositories(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	app, err := newApp(c, logger, m)
	if err != nil {
		m.Close()
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, m repomanager.RepositoryManager) (*App, error) {
	locator, err := services.NewLocator(m, c, logger)
	if err != nil {
		return nil, err
	}
	resolver, err := services.NewResolver(m, c)
	if err != nil {
		return nil, err
	}

	srv, err := httpserver.NewHTTPServer(c, logger, httpserver.Services{
		Locator:  locator,
		Resolver: resolver,
		Catalog:  services.NewCatalogService(m),
		Users:    services.NewUserService(m, c),
		Carts:    services.NewCartService(m),
		Store:    m,
	})
	if err != nil {
		return nil, err
	}

	return &App{config: c, logger: logger, repomanager: m, httpServer: srv}, nil
}

// Run serves until SIGINT, SIGTERM or SIGQUIT (or ctx cancellation), then
// closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	runErr := app.httpServer.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", runErr)
	}

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "Closing store", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
