package desk

import (
	"context"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

type VerifiedAPI interface {
	VerifiedArticles(ctx context.Context) ([]backend.Article, error)
	SearchVerifiedArticles(ctx context.Context, q string) ([]backend.Article, error)
	Unverify(ctx context.Context, id int) error
}

// VerifiedList is the verified article collection.
type VerifiedList struct {
	*view
	api VerifiedAPI
}

func NewVerifiedList(api VerifiedAPI, opts Options) *VerifiedList {
	return &VerifiedList{
		view: newView("verified", api.VerifiedArticles, api.SearchVerifiedArticles, opts),
		api:  api,
	}
}

// Unverify sends the article back to pending. On success it leaves this list without a refetch;
// on failure local state is untouched.
func (l *VerifiedList) Unverify(ctx context.Context, id int) (Result, error) {
	a, _ := l.Article(id)

	if err := l.api.Unverify(ctx, id); err != nil {
		l.log.Error("failed to unverify article", "article_id", id, "error", err)
		record(ctx, l.opts, OpUnverify, id, false, err)
		return Result{Article: a}, err
	}

	l.mu.Lock()
	l.removeLocked(id)
	l.mu.Unlock()

	record(ctx, l.opts, OpUnverify, id, true, nil)
	return Result{Applied: true, Article: a}, nil
}
