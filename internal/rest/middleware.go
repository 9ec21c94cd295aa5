package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/powersector-desk/internal/desk"
	"github.com/daniilsolovey/powersector-desk/internal/session"
)

const (
	workspaceKey = "workspace"

	loadingPlaceholder = `<!DOCTYPE html><html><head><meta http-equiv="refresh" content="1"></head><body><div>Loading...</div></body></html>`
)

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)
		return nil
	}
}

// workspaceMiddleware attaches the editor's workspace, creating one when the cookie is
// missing or stale. The workspace and its session holder are put into the request context.
func (h *Handler) workspaceMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		w, err := h.workspace(c)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}

		c.Set(workspaceKey, w)
		ctx := desk.NewContext(c.Request().Context(), w)
		ctx = session.NewContext(ctx, w.Session)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (h *Handler) workspace(c echo.Context) (*desk.Workspace, error) {
	if ck, err := c.Cookie(h.cfg.CookieName); err == nil {
		if w, ok := h.registry.Get(ck.Value); ok {
			return w, nil
		}
	}

	w, err := h.registry.Create()
	if err != nil {
		return nil, err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    w.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	h.mount(w)

	return w, nil
}

func currentWorkspace(c echo.Context) *desk.Workspace {
	w, _ := c.Get(workspaceKey).(*desk.Workspace)
	return w
}

func sessionState(c echo.Context) session.State {
	if holder, ok := session.FromContext(c.Request().Context()); ok {
		return holder.Snapshot()
	}
	return session.State{}
}

// Protected renders its route only for authenticated editors. While the session check is in
// flight a loading placeholder is shown; anonymous editors are redirected to redirectTo.
func Protected(redirectTo string) echo.MiddlewareFunc {
	if redirectTo == "" {
		redirectTo = DefaultSignInPath
	}
	return guard(redirectTo, true)
}

// Public renders its route only for anonymous editors and sends signed-in ones to redirectTo.
func Public(redirectTo string) echo.MiddlewareFunc {
	if redirectTo == "" {
		redirectTo = DefaultHomePath
	}
	return guard(redirectTo, false)
}

func guard(redirectTo string, wantAuthenticated bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st := sessionState(c)
			switch {
			case st.Loading:
				return c.HTML(http.StatusOK, loadingPlaceholder)
			case st.Authenticated != wantAuthenticated:
				return c.Redirect(http.StatusFound, redirectTo)
			}
			return next(c)
		}
	}
}

// apiGuard is Protected for JSON clients.
func (h *Handler) apiGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		st := sessionState(c)
		switch {
		case st.Loading:
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session check in progress"})
		case !st.Authenticated:
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		return next(c)
	}
}
