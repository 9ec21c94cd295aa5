package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

//go:generate zenrpc

var errNoWorkspace = zenrpc.NewStringError(401, "no workspace")

// DeskService exposes the editor's workspace over JSON-RPC. The workspace is taken from the
// request context.
type DeskService struct {
	zenrpc.Service
	journal JournalStore
}

// JournalStore lists recorded mutation outcomes. It may be nil when the journal is disabled.
type JournalStore interface {
	Entries(ctx context.Context, f *db.EntryFilter) ([]db.JournalEntry, error)
	EntriesCount(ctx context.Context, f *db.EntryFilter) (int, error)
}

func NewDeskService(journal JournalStore) *DeskService {
	return &DeskService{journal: journal}
}

// Session returns the session state of the current workspace.
//
//zenrpc:return session state
//zenrpc:401 no workspace
func (s *DeskService) Session(ctx context.Context) (Session, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return Session{}, errNoWorkspace
	}
	return NewSession(w.Session.Snapshot()), nil
}

// Articles returns a page of unverified articles. Page 0 keeps the current page.
//
//zenrpc:page page number (1-based)
//zenrpc:return page of articles
//zenrpc:401 no workspace
func (s *DeskService) Articles(ctx context.Context, page int) (ArticlesPage, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return ArticlesPage{}, errNoWorkspace
	}
	if page > 0 {
		w.List.GoTo(page - 1)
	}
	return NewArticlesPage(w.List.Snapshot()), nil
}

// Verified returns a page of verified articles. Page 0 keeps the current page.
//
//zenrpc:page page number (1-based)
//zenrpc:return page of verified articles
//zenrpc:401 no workspace
func (s *DeskService) Verified(ctx context.Context, page int) (ArticlesPage, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return ArticlesPage{}, errNoWorkspace
	}
	if page > 0 {
		w.Verified.GoTo(page - 1)
	}
	return NewArticlesPage(w.Verified.Snapshot()), nil
}

// Refresh refetches both article lists and returns the first page of unverified articles.
//
//zenrpc:return first page of articles
//zenrpc:401 no workspace
//zenrpc:502 backend unavailable
func (s *DeskService) Refresh(ctx context.Context) (ArticlesPage, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return ArticlesPage{}, errNoWorkspace
	}
	if err := w.List.FetchAll(ctx); err != nil {
		return ArticlesPage{}, newError(err)
	}
	_ = w.Verified.FetchAll(ctx)
	return NewArticlesPage(w.List.Snapshot()), nil
}

// ChangeSentiment sets the sentiment of an article.
//
//zenrpc:articleId article ID
//zenrpc:sentiment Positive, Neutral or Negative
//zenrpc:return mutation result
//zenrpc:400 invalid sentiment
//zenrpc:404 article not found
//zenrpc:502 backend error
func (s *DeskService) ChangeSentiment(ctx context.Context, articleId int, sentiment string) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.List.ChangeSentiment(ctx, articleId, backend.Sentiment(sentiment))
	})
}

// Verify marks an article verified.
//
//zenrpc:articleId article ID
//zenrpc:return mutation result
//zenrpc:502 backend error
func (s *DeskService) Verify(ctx context.Context, articleId int) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.Verify(ctx, articleId)
	})
}

// Unverify sends a verified article back to pending.
//
//zenrpc:articleId article ID
//zenrpc:return mutation result
//zenrpc:502 backend error
func (s *DeskService) Unverify(ctx context.Context, articleId int) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.Unverify(ctx, articleId)
	})
}

// AddTag attaches a tag. A tag already on the article is not sent again.
//
//zenrpc:articleId article ID
//zenrpc:tagName tag name
//zenrpc:return mutation result
//zenrpc:400 tag name is required
//zenrpc:404 article not found
//zenrpc:502 backend error
func (s *DeskService) AddTag(ctx context.Context, articleId int, tagName string) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.List.AddTag(ctx, articleId, tagName)
	})
}

// RemoveTag detaches a tag.
//
//zenrpc:articleId article ID
//zenrpc:tagName tag name
//zenrpc:return mutation result
//zenrpc:404 article not found
//zenrpc:502 backend error
func (s *DeskService) RemoveTag(ctx context.Context, articleId int, tagName string) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.List.RemoveTag(ctx, articleId, tagName)
	})
}

// SetTagSentiment sets the sentiment of one tag of an article.
//
//zenrpc:articleId article ID
//zenrpc:tagName tag name
//zenrpc:sentiment Positive, Neutral or Negative
//zenrpc:return mutation result
//zenrpc:404 article not found
//zenrpc:502 backend error
func (s *DeskService) SetTagSentiment(ctx context.Context, articleId int, tagName, sentiment string) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.List.SetTagSentiment(ctx, articleId, tagName, backend.Sentiment(sentiment))
	})
}

// Delete removes an article. confirm must be true.
//
//zenrpc:articleId article ID
//zenrpc:confirm editor confirmed the delete prompt
//zenrpc:return mutation result
//zenrpc:400 delete is not confirmed
//zenrpc:502 backend error
func (s *DeskService) Delete(ctx context.Context, articleId int, confirm bool) (MutationResult, error) {
	if !confirm {
		return MutationResult{}, zenrpc.NewStringError(400, desk.DeleteConfirmPrompt)
	}
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.Cards.RequestDelete(ctx, articleId, true)
	})
}

// UpdateField sets url, author or source of an article.
//
//zenrpc:articleId article ID
//zenrpc:field url, author or source
//zenrpc:value new value
//zenrpc:return mutation result
//zenrpc:400 unknown article field
//zenrpc:502 backend error
func (s *DeskService) UpdateField(ctx context.Context, articleId int, field, value string) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.List.UpdateField(ctx, articleId, backend.Field(field), value)
	})
}

// AddQuote attaches a quote to an article.
//
//zenrpc:articleId article ID
//zenrpc:quote quote text
//zenrpc:person person quoted
//zenrpc:sentiment Positive, Neutral or Negative
//zenrpc:return mutation result
//zenrpc:400 all quote fields are required
//zenrpc:502 backend error
func (s *DeskService) AddQuote(ctx context.Context, articleId int, quote, person, sentiment string) (MutationResult, error) {
	return mutate(ctx, func(w *desk.Workspace) (desk.Result, error) {
		return w.List.AddQuote(ctx, articleId, quote, person, backend.Sentiment(sentiment))
	})
}

// Insights loads the charts of a scope. Dates are YYYY-MM-DD and must be given together.
//
//zenrpc:scope all or verified
//zenrpc:startDate range start
//zenrpc:endDate range end
//zenrpc:return insights
//zenrpc:400 invalid date range
func (s *DeskService) Insights(ctx context.Context, scope, startDate, endDate string) (Insights, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return Insights{}, errNoWorkspace
	}

	r, err := desk.ParseDateRange(startDate, endDate)
	if err != nil {
		return Insights{}, newError(err)
	}

	sc := backend.ScopeAll
	if scope == string(backend.ScopeVerified) {
		sc = backend.ScopeVerified
	}
	return NewInsights(w.Insights.Load(ctx, sc, r)), nil
}

// Ask sends a question to the power sector agent and returns the conversation.
//
//zenrpc:query question
//zenrpc:return conversation
func (s *DeskService) Ask(ctx context.Context, query string) (ChatMessages, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return nil, errNoWorkspace
	}
	w.Chat.Ask(ctx, query)
	return NewChatMessages(w.Chat.Messages()), nil
}

// Journal lists recorded mutation outcomes of the current workspace, newest first.
//
//zenrpc:operation operation filter, empty for all
//zenrpc:page page number (1-based)
//zenrpc:return journal page
//zenrpc:404 journal is disabled
//zenrpc:500 internal server error
func (s *DeskService) Journal(ctx context.Context, operation string, page int) (JournalPage, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return JournalPage{}, errNoWorkspace
	}
	if s.journal == nil {
		return JournalPage{}, zenrpc.NewStringError(404, "journal is disabled")
	}

	f := &db.EntryFilter{Workspace: w.ID, Operation: operation}
	f.Init()
	f.SetPage(page)

	entries, err := s.journal.Entries(ctx, f)
	if err != nil {
		return JournalPage{}, err
	}
	total, err := s.journal.EntriesCount(ctx, f)
	if err != nil {
		return JournalPage{}, err
	}

	return JournalPage{Entries: NewJournalEntries(entries), Total: total}, nil
}

func mutate(ctx context.Context, fn func(w *desk.Workspace) (desk.Result, error)) (MutationResult, error) {
	w, ok := desk.FromContext(ctx)
	if !ok {
		return MutationResult{}, errNoWorkspace
	}

	res, err := fn(w)
	if err != nil {
		return NewMutationResult(res), newError(err)
	}
	return NewMutationResult(res), nil
}

// newError maps desk failures to RPC error codes.
func newError(err error) error {
	switch {
	case desk.IsValidation(err):
		return zenrpc.NewStringError(400, desk.Notice(err))
	case errors.Is(err, desk.ErrNotFound):
		return zenrpc.NewStringError(404, "article not found")
	case errors.Is(err, desk.ErrUnknownField):
		return zenrpc.NewStringError(400, "unknown article field")
	}
	return zenrpc.NewStringError(502, desk.Notice(err))
}
