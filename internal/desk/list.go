package desk

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

// ArticleAPI is the slice of the backend the article list talks to.
type ArticleAPI interface {
	Articles(ctx context.Context) ([]backend.Article, error)
	SearchArticles(ctx context.Context, q string) ([]backend.Article, error)
	Sources(ctx context.Context, prefix string) ([]backend.SourceOption, error)
	SetSentiment(ctx context.Context, id int, s backend.Sentiment) error
	Verify(ctx context.Context, id int) error
	AddTag(ctx context.Context, id int, name string) error
	RemoveTag(ctx context.Context, id int, name string) error
	SetTagSentiment(ctx context.Context, id int, tag string, s backend.Sentiment) error
	DeleteArticle(ctx context.Context, id int) error
	UpdateField(ctx context.Context, id int, field backend.Field, value string) error
	AddQuote(ctx context.Context, q backend.Quote) error
}

const (
	OpSentiment    = "sentiment"
	OpVerify       = "verify"
	OpUnverify     = "unverify"
	OpAddTag       = "add_tag"
	OpRemoveTag    = "remove_tag"
	OpTagSentiment = "tag_sentiment"
	OpDelete       = "delete"
	OpUpdateField  = "update_field"
	OpAddQuote     = "add_quote"
)

// List is the unverified article collection with all card mutations.
type List struct {
	*view
	api ArticleAPI
}

func NewList(api ArticleAPI, opts Options) *List {
	return &List{
		view: newView("articles", api.Articles, api.SearchArticles, opts),
		api:  api,
	}
}

// Sources returns the news source vocabulary for the source filter.
func (l *List) Sources(ctx context.Context, prefix string) ([]backend.SourceOption, error) {
	opts, err := l.api.Sources(ctx, prefix)
	if err != nil {
		l.log.Error("failed to load news sources", "error", err)
		return nil, fmt.Errorf("failed to load news sources: %w", err)
	}
	return opts, nil
}

// ChangeSentiment patches the sentiment locally before sending it, and puts the previous value
// back if the backend rejects it.
func (l *List) ChangeSentiment(ctx context.Context, id int, s backend.Sentiment) (Result, error) {
	if !s.Valid() {
		return Result{}, invalid(fmt.Sprintf("Unknown sentiment %q", s))
	}

	l.mu.Lock()
	a := l.findLocked(id)
	if a == nil {
		l.mu.Unlock()
		return Result{}, ErrNotFound
	}
	prev := a.Sentiment
	l.patchLocked(id, func(a *backend.Article) { a.Sentiment = s })
	l.mu.Unlock()

	err := l.api.SetSentiment(ctx, id, s)
	if err != nil {
		l.mu.Lock()
		l.patchLocked(id, func(a *backend.Article) {
			// a later change wins over the rollback
			if a.Sentiment == s {
				a.Sentiment = prev
			}
		})
		l.mu.Unlock()

		l.log.Error("failed to change sentiment", "article_id", id, "sentiment", s, "error", err)
	}

	return l.finish(ctx, OpSentiment, id, err == nil, err)
}

// Verify marks the article verified and refetches, since verified articles leave this list.
func (l *List) Verify(ctx context.Context, id int) (Result, error) {
	if err := l.api.Verify(ctx, id); err != nil {
		l.log.Error("failed to verify article", "article_id", id, "error", err)
		return l.finish(ctx, OpVerify, id, false, err)
	}

	res, _ := l.finish(ctx, OpVerify, id, true, nil)
	_ = l.FetchAll(ctx)
	return res, nil
}

// AddTag attaches a tag by name. A name already on the article is rejected without a request.
func (l *List) AddTag(ctx context.Context, id int, name string) (Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, invalid("Tag name is required")
	}

	a, ok := l.Article(id)
	if !ok {
		return Result{}, ErrNotFound
	}
	if a.HasTag(name) {
		return Result{Article: a}, nil
	}

	if err := l.api.AddTag(ctx, id, name); err != nil {
		l.log.Error("failed to add tag", "article_id", id, "tag", name, "error", err)
		return l.finish(ctx, OpAddTag, id, false, err)
	}

	// tag ids are display-only until the next fetch
	tempID := l.opts.Now().UnixMilli()

	l.mu.Lock()
	l.patchLocked(id, func(a *backend.Article) {
		if !a.HasTag(name) {
			tags := make([]backend.Tag, len(a.Tags), len(a.Tags)+1)
			copy(tags, a.Tags)
			a.Tags = append(tags, backend.Tag{TagID: tempID, TagName: name})
		}
	})
	l.mu.Unlock()

	return l.finish(ctx, OpAddTag, id, true, nil)
}

func (l *List) RemoveTag(ctx context.Context, id int, name string) (Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, invalid("Tag name is required")
	}
	if !l.known(id) {
		return Result{}, ErrNotFound
	}

	if err := l.api.RemoveTag(ctx, id, name); err != nil {
		l.log.Error("failed to remove tag", "article_id", id, "tag", name, "error", err)
		return l.finish(ctx, OpRemoveTag, id, false, err)
	}

	l.mu.Lock()
	l.patchLocked(id, func(a *backend.Article) {
		tags := make([]backend.Tag, 0, len(a.Tags))
		for _, t := range a.Tags {
			if t.TagName != name {
				tags = append(tags, t)
			}
		}
		a.Tags = tags
	})
	l.mu.Unlock()

	return l.finish(ctx, OpRemoveTag, id, true, nil)
}

func (l *List) SetTagSentiment(ctx context.Context, id int, tag string, s backend.Sentiment) (Result, error) {
	if !s.Valid() {
		return Result{}, invalid(fmt.Sprintf("Unknown sentiment %q", s))
	}
	if !l.known(id) {
		return Result{}, ErrNotFound
	}

	if err := l.api.SetTagSentiment(ctx, id, tag, s); err != nil {
		l.log.Error("failed to set tag sentiment", "article_id", id, "tag", tag, "error", err)
		return l.finish(ctx, OpTagSentiment, id, false, err)
	}

	l.mu.Lock()
	l.patchLocked(id, func(a *backend.Article) {
		tags := make([]backend.Tag, len(a.Tags))
		copy(tags, a.Tags)
		for i := range tags {
			if tags[i].TagName == tag {
				tags[i].Sentiment = s
			}
		}
		a.Tags = tags
	})
	l.mu.Unlock()

	return l.finish(ctx, OpTagSentiment, id, true, nil)
}

// Delete removes the article. Callers must have the editor confirm first (DeleteConfirmPrompt).
// Deleting an article that is not held locally does nothing.
func (l *List) Delete(ctx context.Context, id int) (Result, error) {
	a, ok := l.Article(id)
	if !ok {
		return Result{}, nil
	}

	if err := l.api.DeleteArticle(ctx, id); err != nil {
		l.log.Error("failed to delete article", "article_id", id, "error", err)
		return l.finish(ctx, OpDelete, id, false, err)
	}

	l.mu.Lock()
	l.removeLocked(id)
	l.mu.Unlock()

	record(ctx, l.opts, OpDelete, id, true, nil)
	return Result{Applied: true, Article: a}, nil
}

// UpdateField sets url, author or source and refetches the collection.
func (l *List) UpdateField(ctx context.Context, id int, field backend.Field, value string) (Result, error) {
	if !field.Valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	value = strings.TrimSpace(value)

	if err := l.api.UpdateField(ctx, id, field, value); err != nil {
		l.log.Error("failed to update article field", "article_id", id, "field", field, "error", err)
		return l.finish(ctx, OpUpdateField, id, false, err)
	}

	_ = l.FetchAll(ctx)
	return l.finish(ctx, OpUpdateField, id, true, nil)
}

// AddQuote attaches a quote. Nothing changes locally; the quote shows after the next fetch.
func (l *List) AddQuote(ctx context.Context, id int, quote, person string, s backend.Sentiment) (Result, error) {
	q, err := ValidateQuote(id, quote, person, s)
	if err != nil {
		return Result{}, err
	}

	if err := l.api.AddQuote(ctx, q); err != nil {
		l.log.Error("failed to add quote", "article_id", id, "error", err)
		return l.finish(ctx, OpAddQuote, id, false, err)
	}

	return l.finish(ctx, OpAddQuote, id, true, nil)
}

// finish journals the outcome and reports the article as it is held now.
func (l *List) finish(ctx context.Context, op string, id int, applied bool, err error) (Result, error) {
	record(ctx, l.opts, op, id, applied, err)

	a, _ := l.Article(id)
	return Result{Applied: applied, Article: a}, err
}
