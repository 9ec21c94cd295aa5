package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

var errBackendDown = errors.New("connection refused")

// stubBackend is a manual in-memory news backend for handler tests.
type stubBackend struct {
	mu            sync.Mutex
	articles      []backend.Article
	verified      []backend.Article
	authenticated bool
	errs          map[string]error
	calls         []string
}

func newStubBackend(authenticated bool) *stubBackend {
	return &stubBackend{
		articles:      sampleArticles(10),
		authenticated: authenticated,
		errs:          map[string]error{},
	}
}

func sampleArticles(n int) []backend.Article {
	out := make([]backend.Article, n)
	for i := range out {
		out[i] = backend.Article{
			ArticleID:       i + 1,
			Headline:        fmt.Sprintf("Headline %d", i+1),
			PublicationDate: "2025-01-02",
			Source:          "Dawn",
			Tags:            []backend.Tag{{TagID: 1, TagName: "NEPRA"}},
		}
	}
	return out
}

func (s *stubBackend) call(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
	return s.errs[name]
}

func (s *stubBackend) failOn(name string, err error) {
	s.mu.Lock()
	s.errs[name] = err
	s.mu.Unlock()
}

func (s *stubBackend) called(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (s *stubBackend) Articles(ctx context.Context) ([]backend.Article, error) {
	if err := s.call("Articles"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.Article(nil), s.articles...), nil
}

func (s *stubBackend) SearchArticles(ctx context.Context, q string) ([]backend.Article, error) {
	return nil, s.call("SearchArticles")
}

func (s *stubBackend) Sources(ctx context.Context, prefix string) ([]backend.SourceOption, error) {
	if err := s.call("Sources"); err != nil {
		return nil, err
	}
	return []backend.SourceOption{{Value: "Dawn", Label: "Dawn"}, {Value: "Business Recorder", Label: "Business Recorder"}}, nil
}

func (s *stubBackend) SetSentiment(ctx context.Context, id int, st backend.Sentiment) error {
	return s.call("SetSentiment")
}

func (s *stubBackend) Verify(ctx context.Context, id int) error {
	if err := s.call("Verify"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.articles {
		if a.ArticleID == id {
			s.verified = append(s.verified, a)
			s.articles = append(s.articles[:i:i], s.articles[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubBackend) AddTag(ctx context.Context, id int, name string) error {
	return s.call("AddTag")
}

func (s *stubBackend) RemoveTag(ctx context.Context, id int, name string) error {
	return s.call("RemoveTag")
}

func (s *stubBackend) SetTagSentiment(ctx context.Context, id int, tag string, st backend.Sentiment) error {
	return s.call("SetTagSentiment")
}

func (s *stubBackend) DeleteArticle(ctx context.Context, id int) error {
	return s.call("DeleteArticle")
}

func (s *stubBackend) UpdateField(ctx context.Context, id int, field backend.Field, value string) error {
	return s.call("UpdateField")
}

func (s *stubBackend) AddQuote(ctx context.Context, q backend.Quote) error {
	return s.call("AddQuote")
}

func (s *stubBackend) VerifiedArticles(ctx context.Context) ([]backend.Article, error) {
	if err := s.call("VerifiedArticles"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.Article(nil), s.verified...), nil
}

func (s *stubBackend) SearchVerifiedArticles(ctx context.Context, q string) ([]backend.Article, error) {
	return nil, s.call("SearchVerifiedArticles")
}

func (s *stubBackend) Unverify(ctx context.Context, id int) error {
	if err := s.call("Unverify"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.verified {
		if a.ArticleID == id {
			s.articles = append(s.articles, a)
			s.verified = append(s.verified[:i:i], s.verified[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubBackend) SourcesSentiment(ctx context.Context, scope backend.Scope, r backend.DateRange) ([]backend.Row, error) {
	if err := s.call("SourcesSentiment"); err != nil {
		return nil, err
	}
	return []backend.Row{{"source": "Dawn", "positive": 2.0, "negative": 1.0, "neutral": 0.0}}, nil
}

func (s *stubBackend) TopTags(ctx context.Context, scope backend.Scope, r backend.DateRange) ([]backend.Row, error) {
	if err := s.call("TopTags"); err != nil {
		return nil, err
	}
	return []backend.Row{{"tag_name": "NEPRA", "positive": 1.0}}, nil
}

func (s *stubBackend) NewsSummary(ctx context.Context, r backend.DateRange) (*backend.Summary, error) {
	if err := s.call("NewsSummary"); err != nil {
		return nil, err
	}
	return &backend.Summary{TotalArticles: 4, Positive: 2, Negative: 1, Neutral: 1, Summary: "Tariffs rose."}, nil
}

func (s *stubBackend) QuotedPersons(ctx context.Context) ([]backend.QuotedPerson, error) {
	if err := s.call("QuotedPersons"); err != nil {
		return nil, err
	}
	return []backend.QuotedPerson{{QuoteID: 1, PersonQuoted: "Awais Leghari"}, {QuoteID: 2, PersonQuoted: "Musadik Malik"}}, nil
}

func (s *stubBackend) VerifiedQuotes(ctx context.Context, person string) ([]backend.QuoteMonth, error) {
	if err := s.call("VerifiedQuotes"); err != nil {
		return nil, err
	}
	return []backend.QuoteMonth{{YearMonth: "2025-01", PositiveCount: 1, TotalQuotes: 1}}, nil
}

func (s *stubBackend) Ask(ctx context.Context, query string) (string, error) {
	if err := s.call("Ask"); err != nil {
		return "", err
	}
	return "Answer to " + query, nil
}

func (s *stubBackend) Register(ctx context.Context, r backend.RegisterRequest) error {
	return s.call("Register")
}

func (s *stubBackend) CreateArticle(ctx context.Context, a backend.NewArticle) error {
	return s.call("CreateArticle")
}

func (s *stubBackend) Session(ctx context.Context) (*backend.SessionStatus, error) {
	if err := s.call("Session"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return &backend.SessionStatus{}, nil
	}
	return &backend.SessionStatus{Authenticated: true, User: &backend.User{Username: "amna", Email: "amna@example.com"}}, nil
}

func (s *stubBackend) Login(ctx context.Context, username, password string) error {
	if err := s.call("Login"); err != nil {
		return err
	}
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

func (s *stubBackend) Logout(ctx context.Context) error {
	if err := s.call("Logout"); err != nil {
		return err
	}
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
	return nil
}

// stubJournal is a manual stub of JournalStore.
type stubJournal struct {
	entries []db.JournalEntry
	err     error
	filter  *db.EntryFilter
}

func (s *stubJournal) Entries(ctx context.Context, f *db.EntryFilter) ([]db.JournalEntry, error) {
	s.filter = f
	return s.entries, s.err
}

func (s *stubJournal) EntriesCount(ctx context.Context, f *db.EntryFilter) (int, error) {
	return len(s.entries), s.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testDesk struct {
	api      *stubBackend
	registry *desk.Registry
	handler  *Handler
	router   *echo.Echo
}

// newTestDesk wires a handler whose new workspaces resolve their session synchronously.
func newTestDesk(t *testing.T, api *stubBackend, journal JournalStore) *testDesk {
	t.Helper()

	reg := desk.NewRegistry(func(log *slog.Logger) (desk.Backend, error) { return api, nil },
		desk.Options{Logger: quietLogger()})
	t.Cleanup(reg.Close)

	h := NewHandler(reg, journal, nil, Config{}, quietLogger())
	h.mount = func(w *desk.Workspace) {
		if w.Session.Refresh(context.Background()).Authenticated {
			w.Load(context.Background())
		}
	}

	return &testDesk{api: api, registry: reg, handler: h, router: h.RegisterRoutes()}
}

// workspace creates a mounted workspace and returns its cookie.
func (d *testDesk) workspace(t *testing.T) (*desk.Workspace, *http.Cookie) {
	t.Helper()

	w, err := d.registry.Create()
	require.NoError(t, err)
	d.handler.mount(w)
	return w, &http.Cookie{Name: DefaultCookieName, Value: w.ID}
}

func (d *testDesk) do(method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		if strings.HasPrefix(body, "{") {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		} else {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		}
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)
	return rec
}
