package desk

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/session"
)

// Backend is everything a workspace needs from the news backend; *backend.Client implements it.
type Backend interface {
	ArticleAPI
	VerifiedAPI
	InsightsAPI
	QuotesAPI
	AgentAPI
	Registrar
	ArticleCreator
	session.Checker

	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
}

// Workspace is one editor's desk: its own backend session and views.
type Workspace struct {
	ID       string
	Backend  Backend
	Session  *session.Holder
	List     *List
	Verified *VerifiedList
	Cards    *Cards
	Insights *Insights
	Quotes   *QuoteFinder
	Chat     *Chat

	mu       sync.Mutex
	lastSeen time.Time
}

// SignIn opens a backend session and refreshes the session state and the lists.
func (w *Workspace) SignIn(ctx context.Context, username, password string) (session.State, error) {
	if username == "" || password == "" {
		return w.Session.Snapshot(), invalid(MsgRequiredFields)
	}
	if err := w.Backend.Login(ctx, username, password); err != nil {
		return w.Session.Refresh(ctx), fmt.Errorf("failed to sign in: %w", err)
	}

	st := w.Session.Refresh(ctx)
	if st.Authenticated {
		w.Load(ctx)
	}
	return st, nil
}

func (w *Workspace) SignOut(ctx context.Context) error {
	err := w.Backend.Logout(ctx)
	w.Session.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

// Verify verifies an article from the article list and refetches the verified list it moves to.
func (w *Workspace) Verify(ctx context.Context, id int) (Result, error) {
	res, err := w.Cards.Verify(ctx, id)
	if err == nil && res.Applied {
		_ = w.Verified.FetchAll(ctx)
	}
	return res, err
}

// Unverify sends a verified article back to pending and refetches the article list it returns to.
func (w *Workspace) Unverify(ctx context.Context, id int) (Result, error) {
	res, err := w.Verified.Unverify(ctx, id)
	if err == nil && res.Applied {
		_ = w.List.FetchAll(ctx)
	}
	return res, err
}

// Load fetches both lists. Failures are logged by the lists and leave them as they were.
func (w *Workspace) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _ = w.List.FetchAll(ctx) }()
	go func() { defer wg.Done(); _ = w.Verified.FetchAll(ctx) }()
	wg.Wait()
}

func (w *Workspace) Close() {
	w.List.Close()
	w.Verified.Close()
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.lastSeen)
}

type ctxKey struct{}

// NewContext returns ctx carrying w.
func NewContext(ctx context.Context, w *Workspace) context.Context {
	return context.WithValue(ctx, ctxKey{}, w)
}

// FromContext returns the workspace stored in ctx by NewContext.
func FromContext(ctx context.Context) (*Workspace, bool) {
	w, ok := ctx.Value(ctxKey{}).(*Workspace)
	return w, ok && w != nil
}

// BackendFactory creates the backend client of a new workspace.
type BackendFactory func(log *slog.Logger) (Backend, error)

// Registry keeps workspaces by id.
type Registry struct {
	newBackend BackendFactory
	opts       Options
	log        *slog.Logger
	now        func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewRegistry(newBackend BackendFactory, opts Options) *Registry {
	opts = opts.withDefaults()
	return &Registry{
		newBackend: newBackend,
		opts:       opts,
		log:        opts.Logger,
		now:        opts.Now,
		workspaces: make(map[string]*Workspace),
	}
}

// Get returns the workspace with the given id.
func (r *Registry) Get(id string) (*Workspace, bool) {
	r.mu.Lock()
	w, ok := r.workspaces[id]
	r.mu.Unlock()

	if ok {
		w.touch(r.now())
	}
	return w, ok
}

// Create starts a new workspace under a fresh id.
func (r *Registry) Create() (*Workspace, error) {
	id := uuid.NewString()
	log := r.log.With("workspace", id)

	b, err := r.newBackend(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	opts := r.opts
	opts.Workspace = id
	opts.Logger = log

	list := NewList(b, opts)
	w := &Workspace{
		ID:       id,
		Backend:  b,
		Session:  session.NewHolder(b, log),
		List:     list,
		Verified: NewVerifiedList(b, opts),
		Cards:    NewCards(list),
		Insights: NewInsights(b, log),
		Quotes:   NewQuoteFinder(b, log),
		Chat:     NewChat(b, log),
		lastSeen: r.now(),
	}

	r.mu.Lock()
	r.workspaces[id] = w
	r.mu.Unlock()

	log.Info("workspace created")
	return w, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	w, ok := r.workspaces[id]
	delete(r.workspaces, id)
	r.mu.Unlock()

	if ok {
		w.Close()
	}
}

// Sweep closes workspaces idle for longer than ttl and returns how many were removed.
func (r *Registry) Sweep(ttl time.Duration) int {
	now := r.now()

	var stale []*Workspace
	r.mu.Lock()
	for id, w := range r.workspaces {
		if w.idleSince(now) > ttl {
			stale = append(stale, w)
			delete(r.workspaces, id)
		}
	}
	r.mu.Unlock()

	for _, w := range stale {
		w.Close()
		r.log.Info("workspace expired", "workspace", w.ID)
	}
	return len(stale)
}

// Run sweeps idle workspaces every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, ttl time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sweep(ttl)
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Close closes every workspace.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.workspaces
	r.workspaces = make(map[string]*Workspace)
	r.mu.Unlock()

	for _, w := range all {
		w.Close()
	}
}

// compile-time check
var _ Backend = (*backend.Client)(nil)
