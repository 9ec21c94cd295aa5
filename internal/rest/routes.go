package rest

import (
	"github.com/labstack/echo/v4"
)

const (
	apiV1Prefix = "/api/v1"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/rpc/"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = NewRenderer()
	e.Use(h.loggingMiddleware)

	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.SwaggerDoc)

	web := e.Group("", h.workspaceMiddleware)
	h.registerPageRoutes(web)
	h.registerAPIRoutes(web.Group(apiV1Prefix))

	if h.rpc != nil {
		rpc := echo.WrapHandler(h.rpc)
		web.POST(rpcPath, rpc, h.apiGuard)
		web.GET(rpcPath, rpc, h.apiGuard)
	}

	return e
}

func (h *Handler) registerPageRoutes(web *echo.Group) {
	web.GET("/", h.Index)

	public := web.Group("", Public(h.cfg.HomePath))
	public.GET("/signin", h.SignInPage)
	public.POST("/signin", h.SignIn)
	public.GET("/signup", h.SignUpPage)
	public.POST("/signup", h.SignUp)

	protected := web.Group("", Protected(h.cfg.SignInPath))
	protected.POST("/signout", h.SignOut)
	protected.GET("/dashboard", h.Dashboard)
	protected.GET("/quotes", h.QuotesPage)
	protected.GET("/chat", h.ChatPage)
	protected.POST("/chat", h.ChatAsk)

	protected.GET(articlesPath, h.ArticlesPage)
	protected.GET(verifiedPath, h.VerifiedPage)
	protected.GET("/articles/new", h.NewArticlePage)
	protected.POST("/articles/new", h.CreateArticlePage)

	card := protected.Group("/articles/:id")
	card.POST("/menu", h.CardMenu)
	card.POST("/sentiment", h.CardSentiment)
	card.POST("/verify", h.CardVerify)
	card.POST("/unverify", h.CardUnverify)
	card.POST("/tags", h.CardAddTag)
	card.POST("/tags/remove", h.CardRemoveTag)
	card.POST("/tags/sentiment", h.CardTagSentiment)
	card.POST("/quotes", h.CardQuote)
	card.POST("/edit", h.CardEditor)
	card.POST("/field", h.CardField)
	card.POST("/delete", h.CardDelete)
}

func (h *Handler) registerAPIRoutes(api *echo.Group) {
	api.GET("/session", h.Session)

	g := api.Group("", h.apiGuard)

	g.GET("/articles", h.Articles)
	g.POST("/articles", h.CreateArticle)
	g.POST("/articles/refresh", h.RefreshArticles)
	g.GET("/sources", h.Sources)

	g.DELETE("/articles/:id", h.DeleteArticle)
	g.PUT("/articles/:id/sentiment", h.SetSentiment)
	g.PUT("/articles/:id/verify", h.Verify)
	g.PUT("/articles/:id/unverify", h.Unverify)
	g.POST("/articles/:id/tags", h.AddTag)
	g.DELETE("/articles/:id/tags/:tag", h.RemoveTag)
	g.PUT("/articles/:id/tags/:tag/sentiment", h.SetTagSentiment)
	g.POST("/articles/:id/quotes", h.AddQuote)
	g.PUT("/articles/:id/:field", h.UpdateField)

	g.GET("/verified", h.Verified)
	g.POST("/verified/refresh", h.RefreshVerified)

	g.GET("/insights", h.Insights)
	g.GET("/quotes/persons", h.QuotedPersons)
	g.GET("/quotes/breakdown", h.QuoteBreakdown)

	g.GET("/chat", h.ChatHistory)
	g.POST("/chat", h.Chat)

	g.GET("/journal", h.Journal)
}
