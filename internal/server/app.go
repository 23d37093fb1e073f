// Package server initializes and runs the custdesk backend: it selects the
// storage backend, applies schema migrations, wires the domain services into
// the HTTP server, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"custdesk/internal/logging"
	"custdesk/internal/server/config"
	"custdesk/internal/server/customers"
	"custdesk/internal/server/httpserver"
	"custdesk/internal/server/migrations"
	"custdesk/internal/server/users"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	userService     *users.Service
	customerService *customers.Service
	db              *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	app := &App{config: cfg, logger: logger}

	var userRepo users.Repository
	var customerRepo customers.Repository

	if cfg.Memory {
		userRepo = users.NewMemoryRepository()
		customerRepo = customers.NewMemoryRepository()
	} else {
		db, err := initDatabase(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		userRepo = users.NewPostgresRepository(db)
		customerRepo = customers.NewPostgresRepository(db)
	}

	app.userService = users.NewService(userRepo, cfg)
	app.customerService = customers.NewService(customerRepo)

	return app, nil
}

// initDatabase opens the PostgreSQL database at dsn and applies the embedded
// goose migrations. The returned *sql.DB is owned by the caller.
func initDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP server and blocks until the context is cancelled, an
// OS signal arrives, or the listener fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	srv := httpserver.New(app.config.EndpointAddr, app.logger,
		app.userService, app.customerService,
		app.config.SecretKey, app.config.AllowedOrigin)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		app.logger.Error(ctx, err.Error())
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}

	if app.db != nil {
		_ = app.db.Close()
	}

	app.logger.Info(ctx, "App stopped")
}
