package rest

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/charts"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

// ArticleRequest is the JSON form of the create article page.
type ArticleRequest struct {
	Headline        string   `json:"headline"`
	Sentiment       string   `json:"sentiment"`
	Summary         string   `json:"summary"`
	Author          string   `json:"author"`
	Source          string   `json:"source"`
	PublicationDate string   `json:"publicationDate"`
	URL             string   `json:"url"`
	Tags            []string `json:"tags"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// Session handles GET /api/v1/session
// @Summary Session state
// @Description Returns the editor's session state as last checked against the backend
// @Tags session
// @Produce json
// @Success 200 {object} rest.Session
// @Router /api/v1/session [get]
func (h *Handler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, NewSession(sessionState(c)))
}

// Articles handles GET /api/v1/articles
// @Summary Article list
// @Description Applies the optional source filter, search term and page, then returns the current page. Searches are debounced, so a new term shows up on a later call.
// @Tags articles
// @Produce json
// @Param refresh query bool false "Refetch the list before applying the other parameters"
// @Param page query int false "Page number (1-based)"
// @Param source query []string false "Source filter, repeated or comma separated; empty clears it"
// @Param q query string false "Search term; empty ends the search"
// @Success 200 {object} rest.ArticlesPage
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/articles [get]
func (h *Handler) Articles(c echo.Context) error {
	snap, err := applyView(c, currentWorkspace(c).List)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	return c.JSON(http.StatusOK, NewArticlesPage(snap))
}

// RefreshArticles handles POST /api/v1/articles/refresh
// @Summary Refetch articles
// @Description Replaces the article list with the backend's and ends any search
// @Tags articles
// @Produce json
// @Success 200 {object} rest.ArticlesPage
// @Failure 401,502 {object} map[string]string
// @Router /api/v1/articles/refresh [post]
func (h *Handler) RefreshArticles(c echo.Context) error {
	w := currentWorkspace(c)
	if err := w.List.FetchAll(c.Request().Context()); err != nil {
		return h.handleDeskError(c, err)
	}
	return c.JSON(http.StatusOK, NewArticlesPage(w.List.Snapshot()))
}

// Sources handles GET /api/v1/sources
// @Summary News sources
// @Description Returns the news source vocabulary, optionally narrowed by prefix
// @Tags articles
// @Produce json
// @Param prefix query string false "Source prefix"
// @Success 200 {array} backend.SourceOption
// @Failure 401,502 {object} map[string]string
// @Router /api/v1/sources [get]
func (h *Handler) Sources(c echo.Context) error {
	opts, err := currentWorkspace(c).List.Sources(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return h.handleDeskError(c, err)
	}
	return c.JSON(http.StatusOK, opts)
}

// CreateArticle handles POST /api/v1/articles
// @Summary Create article
// @Description Validates and creates an article, then refetches the list
// @Tags articles
// @Accept json
// @Produce json
// @Param request body rest.ArticleRequest true "Article"
// @Success 201 {object} backend.NewArticle
// @Failure 400,401,502 {object} map[string]string
// @Router /api/v1/articles [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	w := currentWorkspace(c)
	created, err := desk.CreateArticle(c.Request().Context(), w.Backend, desk.ArticleForm{
		Headline:        req.Headline,
		Sentiment:       req.Sentiment,
		Summary:         req.Summary,
		Author:          req.Author,
		Source:          req.Source,
		PublicationDate: req.PublicationDate,
		URL:             req.URL,
		Tags:            strings.Join(req.Tags, ","),
	})
	if err != nil {
		return h.handleDeskError(c, err)
	}

	_ = w.List.FetchAll(c.Request().Context())
	return c.JSON(http.StatusCreated, created)
}

// SetSentiment handles PUT /api/v1/articles/:id/sentiment
// @Summary Change article sentiment
// @Description Applied optimistically; restored if the backend rejects it
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param request body rest.SentimentRequest true "Sentiment"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,404,502 {object} map[string]string
// @Router /api/v1/articles/{id}/sentiment [put]
func (h *Handler) SetSentiment(c echo.Context) error {
	var req SentimentRequest
	return h.mutate(c, &req, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.List.ChangeSentiment(c.Request().Context(), id, backend.Sentiment(req.Sentiment))
	})
}

// Verify handles PUT /api/v1/articles/:id/verify
// @Summary Verify article
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,502 {object} map[string]string
// @Router /api/v1/articles/{id}/verify [put]
func (h *Handler) Verify(c echo.Context) error {
	return h.mutate(c, nil, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Verify(c.Request().Context(), id)
	})
}

// Unverify handles PUT /api/v1/articles/:id/unverify
// @Summary Unverify article
// @Description Sends a verified article back to pending and drops it from the verified list
// @Tags verified
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,502 {object} map[string]string
// @Router /api/v1/articles/{id}/unverify [put]
func (h *Handler) Unverify(c echo.Context) error {
	return h.mutate(c, nil, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Unverify(c.Request().Context(), id)
	})
}

// AddTag handles POST /api/v1/articles/:id/tags
// @Summary Add tag
// @Description Duplicate names are rejected without a backend call (applied=false)
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param request body rest.TagRequest true "Tag"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,404,502 {object} map[string]string
// @Router /api/v1/articles/{id}/tags [post]
func (h *Handler) AddTag(c echo.Context) error {
	var req TagRequest
	return h.mutate(c, &req, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.List.AddTag(c.Request().Context(), id, req.TagName)
	})
}

// RemoveTag handles DELETE /api/v1/articles/:id/tags/:tag
// @Summary Remove tag
// @Tags tags
// @Produce json
// @Param id path int true "Article ID"
// @Param tag path string true "Tag name"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,404,502 {object} map[string]string
// @Router /api/v1/articles/{id}/tags/{tag} [delete]
func (h *Handler) RemoveTag(c echo.Context) error {
	tag, err := url.PathUnescape(c.Param("tag"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid tag")
	}
	return h.mutate(c, nil, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.List.RemoveTag(c.Request().Context(), id, tag)
	})
}

// SetTagSentiment handles PUT /api/v1/articles/:id/tags/:tag/sentiment
// @Summary Change tag sentiment
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param tag path string true "Tag name"
// @Param request body rest.SentimentRequest true "Sentiment"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,404,502 {object} map[string]string
// @Router /api/v1/articles/{id}/tags/{tag}/sentiment [put]
func (h *Handler) SetTagSentiment(c echo.Context) error {
	tag, err := url.PathUnescape(c.Param("tag"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid tag")
	}
	var req SentimentRequest
	return h.mutate(c, &req, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.List.SetTagSentiment(c.Request().Context(), id, tag, backend.Sentiment(req.Sentiment))
	})
}

// DeleteArticle handles DELETE /api/v1/articles/:id
// @Summary Delete article
// @Description Requires confirm=true; deleting an article not in the list does nothing
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Param confirm query bool true "Editor confirmed the delete prompt"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,502 {object} map[string]string
// @Router /api/v1/articles/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return h.handleError(c, nil, http.StatusBadRequest, desk.DeleteConfirmPrompt)
	}
	return h.mutate(c, nil, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.RequestDelete(c.Request().Context(), id, true)
	})
}

// UpdateField handles PUT /api/v1/articles/:id/:field
// @Summary Update article field
// @Description Sets url, author or source and refetches the list
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param field path string true "url, author or source"
// @Param request body rest.FieldRequest true "Value"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,502 {object} map[string]string
// @Router /api/v1/articles/{id}/{field} [put]
func (h *Handler) UpdateField(c echo.Context) error {
	var req FieldRequest
	return h.mutate(c, &req, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.Cards.SubmitField(c.Request().Context(), id, backend.Field(c.Param("field")), req.Value)
	})
}

// AddQuote handles POST /api/v1/articles/:id/quotes
// @Summary Add quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param request body rest.QuoteRequest true "Quote"
// @Success 200 {object} rest.MutationResult
// @Failure 400,401,502 {object} map[string]string
// @Router /api/v1/articles/{id}/quotes [post]
func (h *Handler) AddQuote(c echo.Context) error {
	var req QuoteRequest
	return h.mutate(c, &req, func(w *desk.Workspace, id int) (desk.Result, error) {
		return w.List.AddQuote(c.Request().Context(), id, req.Quote, req.Person, backend.Sentiment(req.Sentiment))
	})
}

// mutate binds the optional request body, runs fn against the path article and writes the
// result.
func (h *Handler) mutate(c echo.Context, req any, fn func(w *desk.Workspace, id int) (desk.Result, error)) error {
	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}
	if req != nil {
		if err := c.Bind(req); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
		}
	}

	res, err := fn(currentWorkspace(c), id)
	if err != nil {
		return h.handleDeskError(c, err)
	}
	return c.JSON(http.StatusOK, NewMutationResult(res))
}

// Verified handles GET /api/v1/verified
// @Summary Verified article list
// @Tags verified
// @Produce json
// @Param refresh query bool false "Refetch the list before applying the other parameters"
// @Param page query int false "Page number (1-based)"
// @Param source query []string false "Source filter"
// @Param q query string false "Search term"
// @Success 200 {object} rest.ArticlesPage
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/verified [get]
func (h *Handler) Verified(c echo.Context) error {
	snap, err := applyView(c, currentWorkspace(c).Verified)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	return c.JSON(http.StatusOK, NewArticlesPage(snap))
}

// RefreshVerified handles POST /api/v1/verified/refresh
// @Summary Refetch verified articles
// @Tags verified
// @Produce json
// @Success 200 {object} rest.ArticlesPage
// @Failure 401,502 {object} map[string]string
// @Router /api/v1/verified/refresh [post]
func (h *Handler) RefreshVerified(c echo.Context) error {
	w := currentWorkspace(c)
	if err := w.Verified.FetchAll(c.Request().Context()); err != nil {
		return h.handleDeskError(c, err)
	}
	return c.JSON(http.StatusOK, NewArticlesPage(w.Verified.Snapshot()))
}

// Insights handles GET /api/v1/insights
// @Summary Insights charts
// @Description Sentiment by source, top tags and (for all articles) the news summary. A dataset that fails is listed in errors and the rest still load.
// @Tags insights
// @Produce json
// @Param scope query string false "all or verified"
// @Param start_date query string false "YYYY-MM-DD, together with end_date"
// @Param end_date query string false "YYYY-MM-DD, together with start_date"
// @Success 200 {object} rest.Insights
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/insights [get]
func (h *Handler) Insights(c echo.Context) error {
	q, err := decodeInsightsQuery(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	r, err := desk.ParseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return h.handleDeskError(c, err)
	}

	data := currentWorkspace(c).Insights.Load(c.Request().Context(), q.scope(), r)
	return c.JSON(http.StatusOK, NewInsights(data))
}

// QuotedPersons handles GET /api/v1/quotes/persons
// @Summary Match quoted persons
// @Description Case-insensitive substring match; an empty term matches nobody
// @Tags quotes
// @Produce json
// @Param term query string false "Name fragment"
// @Success 200 {array} rest.QuotedPerson
// @Failure 401 {object} map[string]string
// @Router /api/v1/quotes/persons [get]
func (h *Handler) QuotedPersons(c echo.Context) error {
	matches := currentWorkspace(c).Quotes.Match(c.Request().Context(), c.QueryParam("term"))
	return c.JSON(http.StatusOK, Map(matches, NewQuotedPerson))
}

// QuoteBreakdown handles GET /api/v1/quotes/breakdown
// @Summary Verified quote sentiment per month
// @Tags quotes
// @Produce json
// @Param person query string true "Person quoted"
// @Success 200 {object} charts.Chart
// @Failure 400,401,502 {object} map[string]string
// @Router /api/v1/quotes/breakdown [get]
func (h *Handler) QuoteBreakdown(c echo.Context) error {
	person := c.QueryParam("person")
	months, err := currentWorkspace(c).Quotes.Breakdown(c.Request().Context(), person)
	if err != nil {
		return h.handleDeskError(c, err)
	}
	return c.JSON(http.StatusOK, charts.QuoteBreakdown(strings.TrimSpace(person), months))
}

// Chat handles POST /api/v1/chat
// @Summary Ask the power sector agent
// @Description Blank queries are ignored. Returns the whole conversation.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body rest.ChatRequest true "Query"
// @Success 200 {array} rest.ChatMessage
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	chat := currentWorkspace(c).Chat
	chat.Ask(c.Request().Context(), req.Query)
	return c.JSON(http.StatusOK, Map(chat.Messages(), NewChatMessage))
}

// Journal handles GET /api/v1/journal
// @Summary Edit journal
// @Description Recorded mutation outcomes, newest first
// @Tags journal
// @Produce json
// @Param workspace query string false "Workspace ID"
// @Param operation query string false "Operation"
// @Param article_id query int false "Article ID"
// @Param applied query bool false "Outcome"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} rest.JournalPage
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/journal [get]
func (h *Handler) Journal(c echo.Context) error {
	if h.journal == nil {
		return h.handleError(c, nil, http.StatusNotFound, "journal is disabled")
	}

	var f db.EntryFilter
	f.Init()
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &f); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	entries, err := h.journal.Entries(c.Request().Context(), &f)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	total, err := h.journal.EntriesCount(c.Request().Context(), &f)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, JournalPage{Entries: Map(entries, NewJournalEntry), Total: total})
}

// ChatHistory handles GET /api/v1/chat
// @Summary Chat conversation
// @Tags chat
// @Produce json
// @Success 200 {array} rest.ChatMessage
// @Failure 401 {object} map[string]string
// @Router /api/v1/chat [get]
func (h *Handler) ChatHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(currentWorkspace(c).Chat.Messages(), NewChatMessage))
}
