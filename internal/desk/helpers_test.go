package desk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend behaves like a tiny news backend: verify and unverify move articles between the
// two collections, deletes and field updates change what the next fetch returns.
type fakeBackend struct {
	mu       sync.Mutex
	calls    []string
	articles []backend.Article
	verified []backend.Article
	persons  []backend.QuotedPerson
	errs     map[string]error

	searchFunc func(ctx context.Context, q string) ([]backend.Article, error)
	askFunc    func(ctx context.Context, q string) (string, error)
	rows       map[string][]backend.Row
	summary    *backend.Summary
	session    *backend.SessionStatus
}

func newFakeBackend(articles ...backend.Article) *fakeBackend {
	return &fakeBackend{articles: articles, errs: map[string]error{}}
}

func (f *fakeBackend) called(format string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := fmt.Sprintf(format, args...)
	f.calls = append(f.calls, call)
	name := strings.Fields(call)[0]
	return f.errs[name]
}

func (f *fakeBackend) failOn(method string, err error) {
	f.mu.Lock()
	f.errs[method] = err
	f.mu.Unlock()
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) CallCount(method string) int {
	n := 0
	for _, c := range f.Calls() {
		if strings.Fields(c)[0] == method {
			n++
		}
	}
	return n
}

func (f *fakeBackend) Articles(ctx context.Context) ([]backend.Article, error) {
	if err := f.called("Articles"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneArticles(f.articles), nil
}

func (f *fakeBackend) SearchArticles(ctx context.Context, q string) ([]backend.Article, error) {
	if err := f.called("SearchArticles %s", q); err != nil {
		return nil, err
	}
	if f.searchFunc != nil {
		return f.searchFunc(ctx, q)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var out []backend.Article
	for _, a := range f.articles {
		if strings.Contains(strings.ToLower(a.Headline), strings.ToLower(q)) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (f *fakeBackend) VerifiedArticles(ctx context.Context) ([]backend.Article, error) {
	if err := f.called("VerifiedArticles"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneArticles(f.verified), nil
}

func (f *fakeBackend) SearchVerifiedArticles(ctx context.Context, q string) ([]backend.Article, error) {
	if err := f.called("SearchVerifiedArticles %s", q); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []backend.Article
	for _, a := range f.verified {
		if strings.Contains(strings.ToLower(a.Headline), strings.ToLower(q)) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (f *fakeBackend) Sources(ctx context.Context, prefix string) ([]backend.SourceOption, error) {
	if err := f.called("Sources %s", prefix); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var out []backend.SourceOption
	for _, a := range f.articles {
		if a.Source != "" && !seen[a.Source] && strings.HasPrefix(a.Source, prefix) {
			seen[a.Source] = true
			out = append(out, backend.SourceOption{Value: a.Source, Label: a.Source})
		}
	}
	return out, nil
}

func (f *fakeBackend) SetSentiment(ctx context.Context, id int, s backend.Sentiment) error {
	return f.called("SetSentiment %d %s", id, s)
}

func (f *fakeBackend) Verify(ctx context.Context, id int) error {
	if err := f.called("Verify %d", id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := indexOf(f.articles, id); i >= 0 {
		f.verified = append(f.verified, f.articles[i])
		f.articles = without(f.articles, id)
	}
	return nil
}

func (f *fakeBackend) Unverify(ctx context.Context, id int) error {
	if err := f.called("Unverify %d", id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := indexOf(f.verified, id); i >= 0 {
		f.articles = append(f.articles, f.verified[i])
		f.verified = without(f.verified, id)
	}
	return nil
}

func (f *fakeBackend) AddTag(ctx context.Context, id int, name string) error {
	return f.called("AddTag %d %s", id, name)
}

func (f *fakeBackend) RemoveTag(ctx context.Context, id int, name string) error {
	return f.called("RemoveTag %d %s", id, name)
}

func (f *fakeBackend) SetTagSentiment(ctx context.Context, id int, tag string, s backend.Sentiment) error {
	return f.called("SetTagSentiment %d %s %s", id, tag, s)
}

func (f *fakeBackend) DeleteArticle(ctx context.Context, id int) error {
	if err := f.called("DeleteArticle %d", id); err != nil {
		return err
	}
	f.mu.Lock()
	f.articles = without(f.articles, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) UpdateField(ctx context.Context, id int, field backend.Field, value string) error {
	if err := f.called("UpdateField %d %s %s", id, field, value); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := indexOf(f.articles, id); i >= 0 {
		switch field {
		case backend.FieldURL:
			f.articles[i].URL = value
		case backend.FieldAuthor:
			f.articles[i].Author = value
		case backend.FieldSource:
			f.articles[i].Source = value
		}
	}
	return nil
}

func (f *fakeBackend) AddQuote(ctx context.Context, q backend.Quote) error {
	return f.called("AddQuote %d %s|%s|%s", q.ArticleID, q.Quote, q.Person, q.Sentiment)
}

func (f *fakeBackend) SourcesSentiment(ctx context.Context, scope backend.Scope, r backend.DateRange) ([]backend.Row, error) {
	if err := f.called("SourcesSentiment %s", scope); err != nil {
		return nil, err
	}
	return f.rows["sentiment"], nil
}

func (f *fakeBackend) TopTags(ctx context.Context, scope backend.Scope, r backend.DateRange) ([]backend.Row, error) {
	if err := f.called("TopTags %s", scope); err != nil {
		return nil, err
	}
	return f.rows["top_tags"], nil
}

func (f *fakeBackend) NewsSummary(ctx context.Context, r backend.DateRange) (*backend.Summary, error) {
	if err := f.called("NewsSummary"); err != nil {
		return nil, err
	}
	return f.summary, nil
}

func (f *fakeBackend) QuotedPersons(ctx context.Context) ([]backend.QuotedPerson, error) {
	if err := f.called("QuotedPersons"); err != nil {
		return nil, err
	}
	return f.persons, nil
}

func (f *fakeBackend) VerifiedQuotes(ctx context.Context, person string) ([]backend.QuoteMonth, error) {
	if err := f.called("VerifiedQuotes %s", person); err != nil {
		return nil, err
	}
	return []backend.QuoteMonth{{YearMonth: "2025-01", PositiveCount: 1, TotalQuotes: 1}}, nil
}

func (f *fakeBackend) Ask(ctx context.Context, q string) (string, error) {
	if err := f.called("Ask %s", q); err != nil {
		return "", err
	}
	if f.askFunc != nil {
		return f.askFunc(ctx, q)
	}
	return "answer to " + q, nil
}

func (f *fakeBackend) Register(ctx context.Context, r backend.RegisterRequest) error {
	return f.called("Register %s", r.Username)
}

func (f *fakeBackend) CreateArticle(ctx context.Context, a backend.NewArticle) error {
	return f.called("CreateArticle %s", a.Headline)
}

func (f *fakeBackend) Session(ctx context.Context) (*backend.SessionStatus, error) {
	if err := f.called("Session"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return &backend.SessionStatus{}, nil
	}
	s := *f.session
	return &s, nil
}

func (f *fakeBackend) Login(ctx context.Context, username, password string) error {
	if err := f.called("Login %s", username); err != nil {
		return err
	}
	f.mu.Lock()
	f.session = &backend.SessionStatus{Authenticated: true, User: &backend.User{Username: username}}
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) Logout(ctx context.Context) error {
	if err := f.called("Logout"); err != nil {
		return err
	}
	f.mu.Lock()
	f.session = nil
	f.mu.Unlock()
	return nil
}

// fakeTimers replaces time.AfterFunc; nothing fires until the test says so.
type fakeTimers struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	owner   *fakeTimers
	f       func()
	d       time.Duration
	stopped bool
	fired   bool
}

func (ft *fakeTimers) AfterFunc(d time.Duration, f func()) Timer {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	t := &fakeTimer{owner: ft, f: f, d: d}
	ft.timers = append(ft.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Pending returns how many timers are armed.
func (ft *fakeTimers) Pending() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	n := 0
	for _, t := range ft.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Fire runs every armed timer on the calling goroutine, as if the quiet window elapsed.
func (ft *fakeTimers) Fire() {
	ft.mu.Lock()
	var due []*fakeTimer
	for _, t := range ft.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	ft.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// FireAsync fires armed timers on a new goroutine and returns a channel closed when they ran.
func (ft *fakeTimers) FireAsync() <-chan struct{} {
	done := make(chan struct{})
	ft.mu.Lock()
	var due []*fakeTimer
	for _, t := range ft.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	ft.mu.Unlock()

	go func() {
		defer close(done)
		for _, t := range due {
			t.f()
		}
	}()
	return done
}

type memJournal struct {
	mu      sync.Mutex
	entries []Entry
}

func (j *memJournal) Record(ctx context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
	return nil
}

func (j *memJournal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]Entry(nil), j.entries...)
}

func article(id int, source string) backend.Article {
	return backend.Article{
		ArticleID:       id,
		Headline:        fmt.Sprintf("Headline %d", id),
		PublicationDate: "2025-01-02",
		Source:          source,
		Tags:            []backend.Tag{},
	}
}

// sampleArticles returns 10 articles: four from A, three from B and three from C.
func sampleArticles() []backend.Article {
	sources := []string{"A", "A", "A", "A", "B", "B", "B", "C", "C", "C"}
	out := make([]backend.Article, len(sources))
	for i, s := range sources {
		out[i] = article(i+1, s)
	}
	return out
}

func ids(list []backend.Article) []int {
	out := make([]int, len(list))
	for i, a := range list {
		out[i] = a.ArticleID
	}
	return out
}

type testList struct {
	*List
	api     *fakeBackend
	timers  *fakeTimers
	journal *memJournal
}

func newTestList(t *testing.T, pageSize int, articles ...backend.Article) *testList {
	t.Helper()

	api := newFakeBackend(articles...)
	timers := &fakeTimers{}
	journal := &memJournal{}
	l := NewList(api, Options{
		PageSize:  pageSize,
		Workspace: "ws-1",
		Journal:   journal,
		Logger:    quietLogger(),
		AfterFunc: timers.AfterFunc,
		Now:       func() time.Time { return time.UnixMilli(1700000000000) },
	})
	t.Cleanup(l.Close)

	if err := l.FetchAll(context.Background()); err != nil {
		t.Fatalf("initial fetch: %v", err)
	}
	return &testList{List: l, api: api, timers: timers, journal: journal}
}
