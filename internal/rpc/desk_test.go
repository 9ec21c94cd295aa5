package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

// stubBackend overrides the calls these tests make; anything else panics.
type stubBackend struct {
	desk.Backend

	articles     []backend.Article
	sentimentErr error
	deleted      []int
}

func (s *stubBackend) Articles(ctx context.Context) ([]backend.Article, error) {
	return s.articles, nil
}

func (s *stubBackend) SearchArticles(ctx context.Context, q string) ([]backend.Article, error) {
	return nil, nil
}

func (s *stubBackend) VerifiedArticles(ctx context.Context) ([]backend.Article, error) {
	return nil, nil
}

func (s *stubBackend) SearchVerifiedArticles(ctx context.Context, q string) ([]backend.Article, error) {
	return nil, nil
}

func (s *stubBackend) Session(ctx context.Context) (*backend.SessionStatus, error) {
	return &backend.SessionStatus{Authenticated: true, User: &backend.User{Username: "amna"}}, nil
}

func (s *stubBackend) SetSentiment(ctx context.Context, id int, st backend.Sentiment) error {
	return s.sentimentErr
}

func (s *stubBackend) DeleteArticle(ctx context.Context, id int) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubBackend) Ask(ctx context.Context, query string) (string, error) {
	return "Answer: " + query, nil
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setup(t *testing.T, api *stubBackend) (http.Handler, *desk.Workspace) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := desk.NewRegistry(func(*slog.Logger) (desk.Backend, error) { return api, nil }, desk.Options{Logger: log})
	t.Cleanup(reg.Close)

	w, err := reg.Create()
	require.NoError(t, err)
	w.Session.Refresh(context.Background())
	require.NoError(t, w.List.FetchAll(context.Background()))

	return New(log, nil), w
}

func call(t *testing.T, srv http.Handler, w *desk.Workspace, method, params string) rpcResponse {
	t.Helper()

	body := `{"jsonrpc":"2.0","id":1,"method":"desk.` + method + `","params":` + params + `}`
	req := httptest.NewRequest(http.MethodPost, "/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if w != nil {
		req = req.WithContext(desk.NewContext(req.Context(), w))
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func sample() []backend.Article {
	return []backend.Article{
		{ArticleID: 1, Headline: "Circular debt", Source: "Dawn"},
		{ArticleID: 2, Headline: "Solar tariff", Source: "Geo", Sentiment: backend.Negative},
	}
}

func TestDeskService_Session(t *testing.T) {
	srv, w := setup(t, &stubBackend{articles: sample()})

	resp := call(t, srv, w, "session", `{}`)
	require.Nil(t, resp.Error)
	assert.JSONEq(t, `{"authenticated":true,"loading":false,"username":"amna"}`, string(resp.Result))

	resp = call(t, srv, nil, "session", `{}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 401, resp.Error.Code)
}

func TestDeskService_Articles(t *testing.T) {
	srv, w := setup(t, &stubBackend{articles: sample()})

	resp := call(t, srv, w, "articles", `{"page":1}`)
	require.Nil(t, resp.Error)

	var page ArticlesPage
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Articles, 2)
	assert.Equal(t, "Neutral", page.Articles[0].Sentiment)
	assert.Equal(t, "Negative", page.Articles[1].Sentiment)

	resp = call(t, srv, w, "articles", `[1]`)
	require.Nil(t, resp.Error)
}

func TestDeskService_ChangeSentiment(t *testing.T) {
	tests := []struct {
		name     string
		params   string
		apiErr   error
		wantCode int
		want     string
	}{
		{name: "applied", params: `{"articleId":1,"sentiment":"Positive"}`, want: "Positive"},
		{name: "invalid sentiment", params: `{"articleId":1,"sentiment":"Happy"}`, wantCode: 400},
		{name: "unknown article", params: `{"articleId":9,"sentiment":"Positive"}`, wantCode: 404},
		{name: "backend failure", params: `{"articleId":1,"sentiment":"Positive"}`, apiErr: errors.New("timeout"), wantCode: 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, w := setup(t, &stubBackend{articles: sample(), sentimentErr: tt.apiErr})

			resp := call(t, srv, w, "changeSentiment", tt.params)

			if tt.wantCode != 0 {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				a, _ := w.List.Article(1)
				assert.Equal(t, backend.Neutral, a.EffectiveSentiment())
				return
			}

			require.Nil(t, resp.Error)
			var res MutationResult
			require.NoError(t, json.Unmarshal(resp.Result, &res))
			assert.True(t, res.Applied)
			require.NotNil(t, res.Article)
			assert.Equal(t, tt.want, res.Article.Sentiment)
		})
	}
}

func TestDeskService_Delete(t *testing.T) {
	api := &stubBackend{articles: sample()}
	srv, w := setup(t, api)

	resp := call(t, srv, w, "delete", `{"articleId":2,"confirm":false}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)
	assert.Equal(t, desk.DeleteConfirmPrompt, resp.Error.Message)
	assert.Empty(t, api.deleted)

	resp = call(t, srv, w, "delete", `{"articleId":2,"confirm":true}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, []int{2}, api.deleted)
	_, ok := w.List.Article(2)
	assert.False(t, ok)
}

func TestDeskService_Ask(t *testing.T) {
	srv, w := setup(t, &stubBackend{articles: sample()})

	resp := call(t, srv, w, "ask", `{"query":"tariffs"}`)
	require.Nil(t, resp.Error)

	var msgs []ChatMessage
	require.NoError(t, json.Unmarshal(resp.Result, &msgs))
	require.Len(t, msgs, 3)
	assert.Equal(t, ChatMessage{Role: desk.RoleAgent, Text: "Answer: tariffs"}, msgs[2])
}

func TestDeskService_UnknownMethod(t *testing.T) {
	srv, w := setup(t, &stubBackend{articles: sample()})

	resp := call(t, srv, w, "publish", `{}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

type stubJournal struct {
	filter *db.EntryFilter
}

func (s *stubJournal) Entries(ctx context.Context, f *db.EntryFilter) ([]db.JournalEntry, error) {
	s.filter = f
	return []db.JournalEntry{{ID: 1, Workspace: f.Workspace, Operation: desk.OpDelete, ArticleID: 2, Applied: true}}, nil
}

func (s *stubJournal) EntriesCount(ctx context.Context, f *db.EntryFilter) (int, error) {
	return 51, nil
}

func TestDeskService_Journal(t *testing.T) {
	_, w := setup(t, &stubBackend{articles: sample()})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	resp := call(t, New(log, nil), w, "journal", `{"operation":"","page":1}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)

	journal := &stubJournal{}
	resp = call(t, New(log, journal), w, "journal", `{"operation":"delete","page":2}`)
	require.Nil(t, resp.Error)

	var page JournalPage
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	assert.Equal(t, 51, page.Total)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, desk.OpDelete, page.Entries[0].Operation)

	require.NotNil(t, journal.filter)
	assert.Equal(t, w.ID, journal.filter.Workspace)
	assert.Equal(t, "delete", journal.filter.Operation)
	assert.Equal(t, 50, journal.filter.GetOffset())
}

func TestDeskService_SMDCoversMethods(t *testing.T) {
	info := DeskService{}.SMD()
	invokable := reflect.ValueOf(RPC.DeskService)

	var exported []string
	typ := reflect.TypeOf(&DeskService{})
	for i := 0; i < typ.NumMethod(); i++ {
		switch name := typ.Method(i).Name; name {
		case "SMD", "Invoke":
		default:
			exported = append(exported, name)
		}
	}
	require.Len(t, exported, invokable.NumField())

	for _, name := range exported {
		t.Run(name, func(t *testing.T) {
			m, ok := info.Methods[name]
			require.True(t, ok, "%s is missing from SMD", name)
			assert.NotEmpty(t, m.Description)

			field := invokable.FieldByName(name)
			require.True(t, field.IsValid(), "%s has no RPC name", name)
			rpcName := field.String()
			assert.Equal(t, strings.ToLower(name[:1])+name[1:], rpcName)

			resp := DeskService{}.Invoke(context.Background(), rpcName, nil)
			require.NotNil(t, resp.Error)
			assert.NotEqual(t, zenrpc.MethodNotFound, resp.Error.Code)
		})
	}
}
