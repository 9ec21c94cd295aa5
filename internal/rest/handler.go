package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

const (
	DefaultSignInPath = "/signin"
	DefaultHomePath   = "/dashboard"
	DefaultCookieName = "desk_workspace"
)

// JournalStore lists recorded mutation outcomes; *db.Repository implements it.
type JournalStore interface {
	Entries(ctx context.Context, f *db.EntryFilter) ([]db.JournalEntry, error)
	EntriesCount(ctx context.Context, f *db.EntryFilter) (int, error)
}

type Config struct {
	SignInPath   string
	HomePath     string
	CookieName   string
	SecureCookie bool
}

func (c Config) withDefaults() Config {
	if c.SignInPath == "" {
		c.SignInPath = DefaultSignInPath
	}
	if c.HomePath == "" {
		c.HomePath = DefaultHomePath
	}
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	return c
}

type Handler struct {
	registry *desk.Registry
	journal  JournalStore
	rpc      http.Handler
	cfg      Config
	log      *slog.Logger

	// mount resolves the session of a freshly created workspace.
	mount func(w *desk.Workspace)
}

// NewHandler builds the desk HTTP handler. journal and rpc may be nil.
func NewHandler(registry *desk.Registry, journal JournalStore, rpc http.Handler, cfg Config, log *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		journal:  journal,
		rpc:      rpc,
		cfg:      cfg.withDefaults(),
		log:      log,
		mount: func(w *desk.Workspace) {
			go w.Session.Refresh(context.Background())
		},
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleDeskError maps synchronizer and backend failures to API responses.
func (h *Handler) handleDeskError(c echo.Context, err error) error {
	switch {
	case desk.IsValidation(err):
		return h.handleError(c, err, http.StatusBadRequest, desk.Notice(err))
	case errors.Is(err, desk.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "article not found")
	case errors.Is(err, desk.ErrUnknownField):
		return h.handleError(c, err, http.StatusBadRequest, "unknown article field")
	}
	return h.handleError(c, err, http.StatusBadGateway, desk.Notice(err))
}

func articleID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
