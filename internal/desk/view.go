package desk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

type fetchFunc func(ctx context.Context) ([]backend.Article, error)

type searchFunc func(ctx context.Context, term string) ([]backend.Article, error)

// Snapshot is a copy of a view's state, ready for rendering.
type Snapshot struct {
	// Articles is the current page of the displayed set.
	Articles  []backend.Article
	Page      int
	PageCount int
	PageSize  int
	Total     int
	Sources   []string
	Term      string
	Searching bool
}

// view is the browse, filter, search and paging state shared by List and VerifiedList.
//
// displayed is always base filtered by sources, where base is the last search result while a
// search is active and canonical otherwise.
type view struct {
	name   string
	fetch  fetchFunc
	search searchFunc
	opts   Options
	log    *slog.Logger
	deb    *debouncer
	flight singleflight.Group

	mu        sync.Mutex
	canonical []backend.Article
	found     []backend.Article
	searching bool
	term      string
	sources   []string
	displayed []backend.Article
	page      int
}

func newView(name string, fetch fetchFunc, search searchFunc, opts Options) *view {
	opts = opts.withDefaults()
	return &view{
		name:   name,
		fetch:  fetch,
		search: search,
		opts:   opts,
		log:    opts.Logger.With("view", name),
		deb:    newDebouncer(opts.SearchDebounce, opts.AfterFunc),
	}
}

// FetchAll replaces the collection with the backend's and ends any active search. Concurrent
// calls share one request. On failure the prior state is kept.
func (v *view) FetchAll(ctx context.Context) error {
	_, err, _ := v.flight.Do("fetch", func() (any, error) {
		list, err := v.fetch(ctx)
		if err != nil {
			return nil, err
		}

		v.deb.Cancel()

		v.mu.Lock()
		defer v.mu.Unlock()

		v.canonical = list
		v.found = nil
		v.searching = false
		v.term = ""
		v.recomputeLocked()
		v.page = 0
		return nil, nil
	})
	if err != nil {
		v.log.Error("failed to fetch articles", "error", err)
		return fmt.Errorf("failed to fetch %s articles: %w", v.name, err)
	}
	return nil
}

// SetSourceFilter narrows the displayed set to the given sources; empty shows everything.
func (v *view) SetSourceFilter(sources []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sources = cleanSources(sources)
	v.recomputeLocked()
	v.page = 0
}

// Search schedules a debounced backend search. A blank term cancels the pending search and
// restores the browse view without a request.
func (v *view) Search(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		v.ClearSearch()
		return
	}

	v.deb.Schedule(func(ctx context.Context, seq uint64) {
		list, err := v.search(ctx, term)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				v.log.Error("failed to search articles", "term", term, "error", err)
			}
			return
		}

		v.mu.Lock()
		defer v.mu.Unlock()

		if !v.deb.Current(seq) {
			v.log.Debug("discarding stale search result", "term", term)
			return
		}

		v.found = list
		v.searching = true
		v.term = term
		v.recomputeLocked()
		v.page = 0
	})
}

func (v *view) ClearSearch() {
	v.deb.Cancel()

	v.mu.Lock()
	defer v.mu.Unlock()

	v.found = nil
	v.searching = false
	v.term = ""
	v.recomputeLocked()
	v.page = 0
}

// Close stops pending searches and waits for running ones.
func (v *view) Close() {
	v.deb.Close()
}

func (v *view) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	start, end := pageBounds(len(v.displayed), v.opts.PageSize, v.page)

	return Snapshot{
		Articles:  cloneArticles(v.displayed[start:end]),
		Page:      v.page,
		PageCount: pageCount(len(v.displayed), v.opts.PageSize),
		PageSize:  v.opts.PageSize,
		Total:     len(v.displayed),
		Sources:   append([]string(nil), v.sources...),
		Term:      v.term,
		Searching: v.searching,
	}
}

// Displayed returns a copy of the whole displayed set.
func (v *view) Displayed() []backend.Article {
	v.mu.Lock()
	defer v.mu.Unlock()
	return cloneArticles(v.displayed)
}

// Canonical returns a copy of the last fetched collection.
func (v *view) Canonical() []backend.Article {
	v.mu.Lock()
	defer v.mu.Unlock()
	return cloneArticles(v.canonical)
}

func (v *view) Article(id int) (backend.Article, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	a := v.findLocked(id)
	if a == nil {
		return backend.Article{}, false
	}
	return a.Clone(), true
}

func (v *view) Prev() int { return v.step(-1) }

func (v *view) Next() int { return v.step(1) }

// GoTo moves to page p, clamped into the valid range, and returns the page it landed on.
func (v *view) GoTo(p int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.page = clampPage(p, len(v.displayed), v.opts.PageSize)
	return v.page
}

func (v *view) step(delta int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.page = clampPage(v.page+delta, len(v.displayed), v.opts.PageSize)
	return v.page
}

func (v *view) recomputeLocked() {
	base := v.canonical
	if v.searching {
		base = v.found
	}
	v.displayed = filterBySource(base, v.sources)
	v.page = clampPage(v.page, len(v.displayed), v.opts.PageSize)
}

// findLocked returns the article as held in the canonical set, falling back to the search
// result.
func (v *view) findLocked(id int) *backend.Article {
	if i := indexOf(v.canonical, id); i >= 0 {
		return &v.canonical[i]
	}
	if i := indexOf(v.found, id); i >= 0 {
		return &v.found[i]
	}
	return nil
}

// patchLocked applies fn to every held copy of the article and recomputes the displayed set.
func (v *view) patchLocked(id int, fn func(a *backend.Article)) bool {
	patched := false
	for _, list := range [][]backend.Article{v.canonical, v.found} {
		if i := indexOf(list, id); i >= 0 {
			fn(&list[i])
			patched = true
		}
	}
	if patched {
		v.recomputeLocked()
	}
	return patched
}

func (v *view) removeLocked(id int) {
	v.canonical = without(v.canonical, id)
	v.found = without(v.found, id)
	v.recomputeLocked()
}

func (v *view) known(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.findLocked(id) != nil
}

func pageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

func clampPage(p, total, size int) int {
	last := pageCount(total, size) - 1
	switch {
	case p < 0:
		return 0
	case p > last:
		return last
	}
	return p
}

func pageBounds(total, size, page int) (int, int) {
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return start, end
}

func filterBySource(list []backend.Article, sources []string) []backend.Article {
	if len(sources) == 0 {
		return append([]backend.Article(nil), list...)
	}

	set := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		set[s] = struct{}{}
	}

	out := make([]backend.Article, 0, len(list))
	for _, a := range list {
		if _, ok := set[a.Source]; ok {
			out = append(out, a)
		}
	}
	return out
}

func cleanSources(sources []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func indexOf(list []backend.Article, id int) int {
	for i := range list {
		if list[i].ArticleID == id {
			return i
		}
	}
	return -1
}

func without(list []backend.Article, id int) []backend.Article {
	if indexOf(list, id) < 0 {
		return list
	}
	out := make([]backend.Article, 0, len(list)-1)
	for _, a := range list {
		if a.ArticleID != id {
			out = append(out, a)
		}
	}
	return out
}

func cloneArticles(list []backend.Article) []backend.Article {
	out := make([]backend.Article, len(list))
	for i := range list {
		out[i] = list[i].Clone()
	}
	return out
}
