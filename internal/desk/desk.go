// Package desk keeps an editor's working view of the article collection in step with the
// news backend: browsing, filtering, searching, paging and every article mutation.
package desk

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

const (
	DefaultPageSize       = 8
	DefaultSearchDebounce = 300 * time.Millisecond

	DeleteConfirmPrompt = "Are you sure you want to delete this article?"
)

var (
	ErrNotFound     = errors.New("article not found")
	ErrUnknownField = errors.New("unknown article field")
)

// ValidationError is a form level failure caught before anything is sent to the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Result is the outcome of a mutation. Applied is false when the mutation was rejected locally
// or failed remotely; Article holds the article as it is in local state after the call.
type Result struct {
	Applied bool
	Article backend.Article
}

// Entry is one journaled mutation outcome.
type Entry struct {
	Workspace string
	Operation string
	ArticleID int
	Applied   bool
	Error     string
}

// Journal records mutation outcomes.
type Journal interface {
	Record(ctx context.Context, e Entry) error
}

// Options configure lists. Zero values fall back to defaults.
type Options struct {
	PageSize       int
	SearchDebounce time.Duration
	Workspace      string
	Journal        Journal
	Logger         *slog.Logger

	// AfterFunc schedules debounced work; time.AfterFunc when nil.
	AfterFunc AfterFunc
	// Now stamps temporary tag ids; time.Now when nil.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.SearchDebounce <= 0 {
		o.SearchDebounce = DefaultSearchDebounce
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.AfterFunc == nil {
		o.AfterFunc = realAfterFunc
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// record sends an outcome to the journal. Journal failures are logged and never affect the
// mutation.
func record(ctx context.Context, o Options, op string, id int, applied bool, err error) {
	if o.Journal == nil {
		return
	}

	e := Entry{Workspace: o.Workspace, Operation: op, ArticleID: id, Applied: applied}
	if err != nil {
		e.Error = err.Error()
	}

	if jerr := o.Journal.Record(context.WithoutCancel(ctx), e); jerr != nil {
		o.Logger.Warn("failed to journal mutation", "op", op, "article_id", id, "error", jerr)
	}
}
