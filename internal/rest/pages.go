package rest

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/charts"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
	"github.com/daniilsolovey/powersector-desk/internal/session"
)

const (
	articlesPath = "/articles"
	verifiedPath = "/articles/verified"
)

type page struct {
	Title   string
	Session session.State
	Notice  string
	Data    any
}

type articlesData struct {
	Cards        []desk.Card
	Snapshot     desk.Snapshot
	Sources      []sourceOption
	Return       string
	Verified     bool
	DeletePrompt string
}

type sourceOption struct {
	Value    string
	Label    string
	Selected bool
}

// sourceOptions loads the news source vocabulary for the filter. A failed load leaves only the
// active sources to choose from.
func sourceOptions(c echo.Context, w *desk.Workspace, active []string) []sourceOption {
	vocab, _ := w.List.Sources(c.Request().Context(), "")

	selected := make(map[string]bool, len(active))
	for _, s := range active {
		selected[s] = true
	}

	opts := make([]sourceOption, 0, len(vocab)+len(active))
	for _, o := range vocab {
		opts = append(opts, sourceOption{Value: o.Value, Label: o.Label, Selected: selected[o.Value]})
		delete(selected, o.Value)
	}
	for _, s := range active {
		if selected[s] {
			opts = append(opts, sourceOption{Value: s, Label: s, Selected: true})
			delete(selected, s)
		}
	}
	return opts
}

type quotesData struct {
	Term      string
	Matches   []backend.QuotedPerson
	Breakdown *charts.Chart
}

func (h *Handler) render(c echo.Context, name, title string, data any) error {
	return c.Render(http.StatusOK, name, page{
		Title:   title,
		Session: sessionState(c),
		Notice:  c.QueryParam("notice"),
		Data:    data,
	})
}

func (h *Handler) renderNotice(c echo.Context, name, title, notice string, data any) error {
	return c.Render(http.StatusOK, name, page{
		Title:   title,
		Session: sessionState(c),
		Notice:  notice,
		Data:    data,
	})
}

// back redirects to the page a card form was posted from, carrying a notice when there is one.
func (h *Handler) back(c echo.Context, notice string) error {
	target := c.FormValue("return")
	if target != verifiedPath {
		target = articlesPath
	}
	if notice != "" {
		target += "?notice=" + url.QueryEscape(notice)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.cfg.HomePath)
}

func (h *Handler) SignInPage(c echo.Context) error {
	return h.render(c, "signin", "Sign in", map[string]string{})
}

func (h *Handler) SignIn(c echo.Context) error {
	w := currentWorkspace(c)
	username := strings.TrimSpace(c.FormValue("username"))

	_, err := w.SignIn(c.Request().Context(), username, c.FormValue("password"))
	if err != nil {
		return h.renderNotice(c, "signin", "Sign in", desk.Notice(err), map[string]string{"Username": username})
	}
	if !w.Session.Snapshot().Authenticated {
		return h.renderNotice(c, "signin", "Sign in", "Sign in failed", map[string]string{"Username": username})
	}
	return c.Redirect(http.StatusSeeOther, h.cfg.HomePath)
}

func (h *Handler) SignUpPage(c echo.Context) error {
	return h.render(c, "signup", "Sign up", map[string]string{})
}

func (h *Handler) SignUp(c echo.Context) error {
	w := currentWorkspace(c)
	form := desk.RegistrationForm{
		Username:  strings.TrimSpace(c.FormValue("username")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Password1: c.FormValue("password1"),
		Password2: c.FormValue("password2"),
		Terms:     c.FormValue("terms") != "",
	}

	if err := desk.Register(c.Request().Context(), w.Backend, form); err != nil {
		return h.renderNotice(c, "signup", "Sign up", desk.Notice(err),
			map[string]string{"Username": form.Username, "Email": form.Email})
	}
	return h.renderNotice(c, "signin", "Sign in", desk.MsgRegistered, map[string]string{"Username": form.Username})
}

func (h *Handler) SignOut(c echo.Context) error {
	w := currentWorkspace(c)
	if err := w.SignOut(c.Request().Context()); err != nil {
		h.log.Error("failed to sign out", "workspace", w.ID, "error", err)
	}
	return c.Redirect(http.StatusSeeOther, h.cfg.SignInPath)
}

func (h *Handler) Dashboard(c echo.Context) error {
	w := currentWorkspace(c)

	q, err := decodeInsightsQuery(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	scope := q.scope()
	title := "Power Sector Insights"
	if scope == backend.ScopeVerified {
		title = "Verified Insights"
	}

	r, err := desk.ParseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		data := NewInsights(w.Insights.Load(c.Request().Context(), scope, backend.DateRange{}))
		return h.renderNotice(c, "dashboard", title, desk.Notice(err), data)
	}

	return h.render(c, "dashboard", title, NewInsights(w.Insights.Load(c.Request().Context(), scope, r)))
}

func (h *Handler) ArticlesPage(c echo.Context) error {
	w := currentWorkspace(c)

	if _, err := applyView(c, w.List); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	cards, snap := w.Cards.Page()
	return h.render(c, "articles", "Articles", articlesData{
		Cards:        cards,
		Snapshot:     snap,
		Sources:      sourceOptions(c, w, snap.Sources),
		Return:       articlesPath,
		DeletePrompt: desk.DeleteConfirmPrompt,
	})
}

func (h *Handler) VerifiedPage(c echo.Context) error {
	w := currentWorkspace(c)

	snap, err := applyView(c, w.Verified)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	cards := make([]desk.Card, len(snap.Articles))
	for i, a := range snap.Articles {
		cards[i] = desk.Card{Article: a}
	}
	return h.render(c, "articles", "Verified Articles", articlesData{
		Cards:    cards,
		Snapshot: snap,
		Sources:  sourceOptions(c, w, snap.Sources),
		Return:   verifiedPath,
		Verified: true,
	})
}

func (h *Handler) NewArticlePage(c echo.Context) error {
	return h.render(c, "new_article", "Add article", desk.ArticleForm{})
}

func (h *Handler) CreateArticlePage(c echo.Context) error {
	w := currentWorkspace(c)
	form := desk.ArticleForm{
		Headline:        c.FormValue("headline"),
		Sentiment:       c.FormValue("sentiment"),
		Summary:         c.FormValue("summary"),
		Author:          c.FormValue("author"),
		Source:          c.FormValue("source"),
		PublicationDate: c.FormValue("publication_date"),
		URL:             c.FormValue("url"),
		Tags:            c.FormValue("tags"),
	}

	if _, err := desk.CreateArticle(c.Request().Context(), w.Backend, form); err != nil {
		return h.renderNotice(c, "new_article", "Add article", desk.Notice(err), form)
	}

	_ = w.List.FetchAll(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, articlesPath+"?notice="+url.QueryEscape("Article created"))
}

// Card actions. Each posts a form and redirects back to the list it came from.

func (h *Handler) CardMenu(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return h.back(c, "Invalid article")
	}
	currentWorkspace(c).Cards.ToggleMenu(id)
	return h.back(c, "")
}

func (h *Handler) CardSentiment(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.ChooseSentiment(c.Request().Context(), id, backend.Sentiment(c.FormValue("sentiment")))
	})
}

func (h *Handler) CardVerify(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Verify(c.Request().Context(), id)
	})
}

func (h *Handler) CardUnverify(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Unverify(c.Request().Context(), id)
	})
}

func (h *Handler) CardAddTag(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.SubmitTag(c.Request().Context(), id, c.FormValue("tag"))
	})
}

func (h *Handler) CardRemoveTag(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.RemoveTag(c.Request().Context(), id, c.FormValue("tag"))
	})
}

func (h *Handler) CardTagSentiment(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.SetTagSentiment(c.Request().Context(), id, c.FormValue("tag"), backend.Sentiment(c.FormValue("sentiment")))
	})
}

func (h *Handler) CardQuote(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.SubmitQuote(c.Request().Context(), id, c.FormValue("quote"), c.FormValue("person"), backend.Sentiment(c.FormValue("sentiment")))
	})
}

func (h *Handler) CardEditor(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return h.back(c, "Invalid article")
	}
	if err := currentWorkspace(c).Cards.OpenEditor(id, backend.Field(c.FormValue("field"))); err != nil {
		return h.back(c, "Unknown field")
	}
	return h.back(c, "")
}

func (h *Handler) CardField(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.SubmitField(c.Request().Context(), id, backend.Field(c.FormValue("field")), c.FormValue("value"))
	})
}

func (h *Handler) CardDelete(c echo.Context) error {
	return h.cardAction(c, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.RequestDelete(c.Request().Context(), id, c.FormValue("confirm") == "true")
	})
}

func (h *Handler) cardAction(c echo.Context, fn func(w *desk.Workspace, id int) (desk.Result, error)) error {
	id, err := articleID(c)
	if err != nil {
		return h.back(c, "Invalid article")
	}

	if _, err := fn(currentWorkspace(c), id); err != nil {
		return h.back(c, desk.Notice(err))
	}
	return h.back(c, "")
}

func (h *Handler) QuotesPage(c echo.Context) error {
	w := currentWorkspace(c)
	ctx := c.Request().Context()

	data := quotesData{Term: c.QueryParam("term")}
	data.Matches = w.Quotes.Match(ctx, data.Term)

	if person := strings.TrimSpace(c.QueryParam("person")); person != "" {
		months, err := w.Quotes.Breakdown(ctx, person)
		if err != nil {
			return h.renderNotice(c, "quotes", "Quotes", desk.Notice(err), data)
		}
		chart := charts.QuoteBreakdown(person, months)
		data.Breakdown = &chart
	}

	return h.render(c, "quotes", "Quotes", data)
}

func (h *Handler) ChatPage(c echo.Context) error {
	return h.render(c, "chat", "Ask Baseer", currentWorkspace(c).Chat.Messages())
}

func (h *Handler) ChatAsk(c echo.Context) error {
	w := currentWorkspace(c)
	w.Chat.Ask(c.Request().Context(), c.FormValue("query"))
	return c.Redirect(http.StatusSeeOther, "/chat")
}
