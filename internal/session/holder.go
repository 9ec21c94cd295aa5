// Package session keeps the editor's view of the backend session: who is signed in and
// whether that is known yet.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

// Checker is the single backend call the holder depends on.
type Checker interface {
	Session(ctx context.Context) (*backend.SessionStatus, error)
}

// State is an immutable snapshot of the session.
type State struct {
	User          *backend.User
	Authenticated bool
	Loading       bool
	Error         string
}

// Holder is the single source of truth for "is there a valid session". Refresh is its only
// mutator; consumers read snapshots.
type Holder struct {
	checker Checker
	log     *slog.Logger

	mu    sync.RWMutex
	state State
	gen   uint64
}

// NewHolder returns a holder that has not resolved the session yet (Loading is true until
// the first Refresh completes).
func NewHolder(checker Checker, log *slog.Logger) *Holder {
	if log == nil {
		log = slog.Default()
	}
	return &Holder{
		checker: checker,
		log:     log,
		state:   State{Loading: true},
	}
}

func (h *Holder) Snapshot() State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s := h.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Refresh asks the backend who is signed in. Any failure resolves to unauthenticated; the
// message is kept in State.Error for diagnostics only. A refresh overtaken by a later one
// discards its answer and returns the current state.
func (h *Holder) Refresh(ctx context.Context) State {
	h.mu.Lock()
	h.gen++
	gen := h.gen
	h.state.Loading = true
	h.state.Error = ""
	h.mu.Unlock()

	status, err := h.checker.Session(ctx)

	next := State{}
	switch {
	case err != nil:
		next.Error = describe(err)
		h.log.Warn("session check failed", "error", err)
	case status != nil && status.Authenticated:
		next.Authenticated = true
		if status.User != nil {
			u := *status.User
			next.User = &u
		}
	}

	h.mu.Lock()
	if gen == h.gen {
		h.state = next
	} else {
		h.log.Debug("discarding stale session check", "generation", gen, "latest", h.gen)
	}
	h.mu.Unlock()

	return h.Snapshot()
}

func describe(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if body := strings.TrimSpace(apiErr.Body); body != "" {
			return body
		}
		return fmt.Sprintf("HTTP %d", apiErr.StatusCode)
	}
	return err.Error()
}

type ctxKey struct{}

// NewContext hands the holder down a request tree.
func NewContext(ctx context.Context, h *Holder) context.Context {
	return context.WithValue(ctx, ctxKey{}, h)
}

func FromContext(ctx context.Context) (*Holder, bool) {
	h, ok := ctx.Value(ctxKey{}).(*Holder)
	return h, ok
}
