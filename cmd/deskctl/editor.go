package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniilsolovey/powersector-desk/config"
	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

const (
	envBackendURL = "DESK_BACKEND_URL"
	envUsername   = "DESK_USERNAME"
	envPassword   = "DESK_PASSWORD"
)

type options struct {
	configPath string
	baseURL    string
	username   string
	password   string
	timeout    time.Duration
	debug      bool
}

func (o *options) backendOptions() (backend.Options, error) {
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return backend.Options{}, err
		}
		return backend.Options{BaseURL: cfg.Backend.BaseURL, Timeout: cfg.Backend.Timeout, CSRFCookie: cfg.Backend.CSRFCookie}, nil
	}

	url := o.baseURL
	if url == "" {
		url = os.Getenv(envBackendURL)
	}
	if url == "" {
		return backend.Options{}, fmt.Errorf("backend url required: use --url or %s", envBackendURL)
	}
	return backend.Options{BaseURL: url, Timeout: o.timeout}, nil
}

func (o *options) credentials() (string, string, error) {
	username, password := o.username, o.password
	if username == "" {
		username = os.Getenv(envUsername)
	}
	if password == "" {
		password = os.Getenv(envPassword)
	}
	if username == "" || password == "" {
		return "", "", fmt.Errorf("credentials required: use --username/--password or %s/%s", envUsername, envPassword)
	}
	return username, password, nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// editor is one signed-in workspace for the duration of a command.
type editor struct {
	*desk.Workspace
	registry *desk.Registry
	timers   *immediate
}

func openEditor(cmd *cobra.Command, o *options) (*editor, error) {
	bo, err := o.backendOptions()
	if err != nil {
		return nil, err
	}
	username, password, err := o.credentials()
	if err != nil {
		return nil, err
	}

	timers := &immediate{}
	registry := desk.NewRegistry(func(log *slog.Logger) (desk.Backend, error) {
		return backend.New(bo, log)
	}, desk.Options{Logger: o.logger(cmd.ErrOrStderr()), AfterFunc: timers.AfterFunc})

	w, err := registry.Create()
	if err != nil {
		return nil, err
	}

	st, err := w.SignIn(cmd.Context(), username, password)
	if err != nil {
		registry.Close()
		return nil, errors.New(desk.Notice(err))
	}
	if !st.Authenticated {
		registry.Close()
		return nil, errors.New("not authenticated")
	}

	return &editor{Workspace: w, registry: registry, timers: timers}, nil
}

func (e *editor) Close() {
	e.registry.Close()
}

// search runs a search on v and waits for its result.
func (e *editor) search(v browser, term string) {
	v.Search(term)
	e.timers.Wait()
}

// browser is the part of the article views the list and search commands use.
type browser interface {
	SetSourceFilter(sources []string)
	Search(term string)
	GoTo(p int) int
	Snapshot() desk.Snapshot
}

func (e *editor) view(verified bool) browser {
	if verified {
		return e.Verified
	}
	return e.List
}

// immediate runs debounced work at once and lets the command wait for it.
type immediate struct {
	wg sync.WaitGroup
}

func (i *immediate) AfterFunc(_ time.Duration, f func()) desk.Timer {
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		f()
	}()
	return firedTimer{}
}

func (i *immediate) Wait() { i.wg.Wait() }

type firedTimer struct{}

func (firedTimer) Stop() bool { return false }
