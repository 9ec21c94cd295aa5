package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/powersector-desk/config"
	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
	"github.com/daniilsolovey/powersector-desk/internal/rest"
	"github.com/daniilsolovey/powersector-desk/internal/rpc"
)

type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Echo     *echo.Echo
	Registry *desk.Registry

	repo *db.Repository
}

// New wires the desk. The journal database is connected and migrated only when enabled.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	opts := desk.Options{
		PageSize:       cfg.Desk.PageSize,
		SearchDebounce: cfg.Desk.SearchDebounce,
		Logger:         logger,
	}

	var journal rest.JournalStore
	if cfg.Journal.Enabled {
		repo, err := a.connectJournal(ctx)
		if err != nil {
			return nil, err
		}
		opts.Journal = db.NewJournal(repo)
		journal = repo
	}

	backendOpts := backend.Options{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    cfg.Backend.Timeout,
		CSRFCookie: cfg.Backend.CSRFCookie,
	}
	a.Registry = desk.NewRegistry(func(log *slog.Logger) (desk.Backend, error) {
		return backend.New(backendOpts, log)
	}, opts)

	handler := rest.NewHandler(a.Registry, journal, rpc.New(logger, journal), rest.Config{
		SignInPath:   cfg.Desk.SignInPath,
		HomePath:     cfg.Desk.HomePath,
		CookieName:   cfg.Desk.CookieName,
		SecureCookie: cfg.Desk.SecureCookie,
	}, logger)
	a.Echo = handler.RegisterRoutes()

	return a, nil
}

func (a *App) connectJournal(ctx context.Context) (*db.Repository, error) {
	if err := db.Migrate(ctx, db.ConnString(&a.Config.Database)); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	dbc := pg.Connect(&a.Config.Database)
	if a.Config.Journal.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(a.Logger))
		a.Logger.Info("SQL query logging enabled")
	}

	repo := db.New(dbc)
	if err := repo.Ping(ctx); err != nil {
		dbc.Close()
		return nil, fmt.Errorf("failed to ping journal database: %w", err)
	}

	a.repo = repo
	return repo, nil
}

// Run serves HTTP and sweeps idle workspaces until the server stops.
func (a *App) Run(ctx context.Context) error {
	go a.Registry.Run(ctx, a.Config.Desk.SweepInterval, a.Config.Desk.WorkspaceTTL)

	a.Logger.Info("desk listening", "addr", a.Config.Addr(), "backend", a.Config.Backend.BaseURL)
	return a.Echo.Start(a.Config.Addr())
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	a.Registry.Close()

	if a.repo != nil {
		if cerr := a.repo.Close(); cerr != nil {
			a.Logger.Error("error closing database connection", "error", cerr)
		}
	}
	return err
}
