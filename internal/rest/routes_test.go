package rest

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

func TestRoutes_Guards(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		loading       bool
		method        string
		path          string
		wantCode      int
		wantLocation  string
		wantBody      string
	}{
		{name: "protected page while loading", loading: true, method: http.MethodGet, path: "/articles", wantCode: http.StatusOK, wantBody: "Loading..."},
		{name: "public page while loading", loading: true, method: http.MethodGet, path: "/signin", wantCode: http.StatusOK, wantBody: "Loading..."},
		{name: "api while loading", loading: true, method: http.MethodGet, path: "/api/v1/articles", wantCode: http.StatusServiceUnavailable, wantBody: "session check in progress"},
		{name: "protected page anonymous", method: http.MethodGet, path: "/articles", wantCode: http.StatusFound, wantLocation: DefaultSignInPath},
		{name: "card action anonymous", method: http.MethodPost, path: "/articles/1/verify", wantCode: http.StatusFound, wantLocation: DefaultSignInPath},
		{name: "public page anonymous", method: http.MethodGet, path: "/signup", wantCode: http.StatusOK, wantBody: "Sign up"},
		{name: "api anonymous", method: http.MethodGet, path: "/api/v1/verified", wantCode: http.StatusUnauthorized, wantBody: "authentication required"},
		{name: "session is never guarded", method: http.MethodGet, path: "/api/v1/session", wantCode: http.StatusOK, wantBody: `"authenticated":false`},
		{name: "public page signed in", authenticated: true, method: http.MethodGet, path: "/signin", wantCode: http.StatusFound, wantLocation: DefaultHomePath},
		{name: "protected page signed in", authenticated: true, method: http.MethodGet, path: "/articles/verified", wantCode: http.StatusOK, wantBody: "Verified Articles"},
		{name: "index", authenticated: true, method: http.MethodGet, path: "/", wantCode: http.StatusFound, wantLocation: DefaultHomePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDesk(t, newStubBackend(tt.authenticated), nil)
			if tt.loading {
				d.handler.mount = func(*desk.Workspace) {}
			}

			rec := d.do(tt.method, tt.path, "", nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.loading && tt.wantCode == http.StatusServiceUnavailable {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestRoutes_WorkspaceCookie(t *testing.T) {
	d := newTestDesk(t, newStubBackend(false), nil)

	rec := d.do(http.MethodGet, "/signin", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 1, d.registry.Len())

	rec = d.do(http.MethodGet, "/signin", "", cookies[0])
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, d.registry.Len())

	rec = d.do(http.MethodGet, "/signin", "", &http.Cookie{Name: DefaultCookieName, Value: "expired"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, 2, d.registry.Len())
}

func TestPages_SignIn(t *testing.T) {
	api := newStubBackend(false)
	d := newTestDesk(t, api, nil)
	w, cookie := d.workspace(t)

	rec := d.do(http.MethodPost, "/signin", "username=&password=", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), desk.MsgRequiredFields)
	assert.False(t, api.called("Login"))

	rec = d.do(http.MethodPost, "/signin", "username=amna&password=secret", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DefaultHomePath, rec.Header().Get("Location"))
	assert.True(t, w.Session.Snapshot().Authenticated)
	assert.Len(t, w.List.Displayed(), 10)

	rec = d.do(http.MethodPost, "/signout", "", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DefaultSignInPath, rec.Header().Get("Location"))
	assert.False(t, w.Session.Snapshot().Authenticated)
}

func TestPages_SignUp(t *testing.T) {
	api := newStubBackend(false)
	d := newTestDesk(t, api, nil)
	_, cookie := d.workspace(t)

	form := url.Values{
		"username":  {"amna"},
		"email":     {"amna@example.com"},
		"password1": {"secret1"},
		"password2": {"secret2"},
		"terms":     {"on"},
	}
	rec := d.do(http.MethodPost, "/signup", form.Encode(), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), desk.MsgPasswordMismatch)
	assert.False(t, api.called("Register"))

	form.Set("password2", "secret1")
	rec = d.do(http.MethodPost, "/signup", form.Encode(), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), desk.MsgRegistered)
	assert.True(t, api.called("Register"))
}

func TestPages_Articles(t *testing.T) {
	api := newStubBackend(true)
	d := newTestDesk(t, api, nil)
	_, cookie := d.workspace(t)

	rec := d.do(http.MethodGet, "/articles", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headline 1<")
	assert.NotContains(t, rec.Body.String(), "Headline 9<")
	assert.True(t, api.called("Sources"))
	assert.Contains(t, rec.Body.String(), `<option value="Business Recorder">Business Recorder</option>`)

	rec = d.do(http.MethodGet, "/articles?page=2", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headline 9<")
}

func TestPages_SourceFilter(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		failOn     bool
		wantOption []string
		wantAbsent []string
	}{
		{
			name:       "vocabulary",
			target:     "/articles",
			wantOption: []string{`<option value="Dawn">Dawn</option>`, `<option value="Business Recorder">Business Recorder</option>`},
		},
		{
			name:       "selected source",
			target:     "/articles?source=Dawn",
			wantOption: []string{`<option value="Dawn" selected>Dawn</option>`, `<option value="Business Recorder">Business Recorder</option>`},
		},
		{
			name:       "active source outside vocabulary",
			target:     "/articles?source=Geo",
			wantOption: []string{`<option value="Geo" selected>Geo</option>`, `<option value="Dawn">Dawn</option>`},
		},
		{
			name:       "vocabulary unavailable",
			target:     "/articles",
			failOn:     true,
			wantAbsent: []string{`<option value="Dawn"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newStubBackend(true)
			if tt.failOn {
				api.failOn("Sources", errBackendDown)
			}
			d := newTestDesk(t, api, nil)
			_, cookie := d.workspace(t)

			rec := d.do(http.MethodGet, tt.target, "", cookie)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, api.called("Sources"))
			assert.Contains(t, rec.Body.String(), `<select name="source" multiple>`)
			for _, want := range tt.wantOption {
				assert.Contains(t, rec.Body.String(), want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, rec.Body.String(), absent)
			}
		})
	}
}

func TestPages_VerifyMovesBetweenPages(t *testing.T) {
	d := newTestDesk(t, newStubBackend(true), nil)
	_, cookie := d.workspace(t)

	rec := d.do(http.MethodGet, "/articles/verified", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Headline 3<")

	rec = d.do(http.MethodPost, "/articles/3/verify", "return=/articles", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = d.do(http.MethodGet, "/articles/verified", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headline 3<")

	rec = d.do(http.MethodGet, "/articles", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Headline 3<")

	rec = d.do(http.MethodPost, "/articles/3/unverify", "return=/articles/verified", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = d.do(http.MethodGet, "/articles/verified", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Headline 3<")

	rec = d.do(http.MethodGet, "/articles?page=2", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headline 3<")
}

func TestPages_RefreshOnEntry(t *testing.T) {
	api := newStubBackend(true)
	d := newTestDesk(t, api, nil)
	w, cookie := d.workspace(t)

	api.mu.Lock()
	api.articles = append(api.articles, backend.Article{ArticleID: 11, Headline: "Headline 11", Source: "Dawn"})
	api.mu.Unlock()

	rec := d.do(http.MethodGet, "/articles", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := w.List.Article(11)
	assert.False(t, ok)

	rec = d.do(http.MethodGet, "/articles?refresh=true", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	_, ok = w.List.Article(11)
	assert.True(t, ok)
}

func TestPages_CardActions(t *testing.T) {
	api := newStubBackend(true)
	d := newTestDesk(t, api, nil)
	w, cookie := d.workspace(t)

	rec := d.do(http.MethodPost, "/articles/3/menu", "return=/articles", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	card, ok := w.Cards.Card(3)
	require.True(t, ok)
	assert.True(t, card.State.MenuOpen)

	rec = d.do(http.MethodPost, "/articles/3/sentiment", "sentiment=Negative&return=/articles", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/articles", rec.Header().Get("Location"))
	card, _ = w.Cards.Card(3)
	assert.Equal(t, "Negative", string(card.Sentiment()))
	assert.False(t, card.State.MenuOpen)

	api.failOn("AddTag", errBackendDown)
	rec = d.do(http.MethodPost, "/articles/3/tags", "tag=Solar&return=/articles/verified", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/articles/verified?notice="+url.QueryEscape(desk.MsgNetworkError), rec.Header().Get("Location"))

	rec = d.do(http.MethodPost, "/articles/3/delete", "return=https://evil.example", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/articles", rec.Header().Get("Location"))
	assert.False(t, api.called("DeleteArticle"))

	rec = d.do(http.MethodPost, "/articles/3/delete", "confirm=true", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, ok = w.List.Article(3)
	assert.False(t, ok)
}

func TestPages_Chat(t *testing.T) {
	d := newTestDesk(t, newStubBackend(true), nil)
	w, cookie := d.workspace(t)

	rec := d.do(http.MethodPost, "/chat", "query=circular+debt", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, w.Chat.Messages(), 3)

	rec = d.do(http.MethodGet, "/chat", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Answer to circular debt")
}

func TestPages_Dashboard(t *testing.T) {
	d := newTestDesk(t, newStubBackend(true), nil)
	_, cookie := d.workspace(t)

	rec := d.do(http.MethodGet, "/dashboard", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Power Sector Insights")

	rec = d.do(http.MethodGet, "/dashboard?scope=verified&start_date=2025-02-01&end_date=2025-01-01", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "End date is before start date")
}

func TestPages_Quotes(t *testing.T) {
	d := newTestDesk(t, newStubBackend(true), nil)
	_, cookie := d.workspace(t)

	rec := d.do(http.MethodGet, "/quotes?term=awais&person=Awais+Leghari", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Awais Leghari")
	assert.Contains(t, rec.Body.String(), "2025-01")
}
