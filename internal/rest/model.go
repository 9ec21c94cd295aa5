package rest

import (
	"time"

	"github.com/daniilsolovey/powersector-desk/internal/charts"
)

type Tag struct {
	TagID     int64  `json:"tagId"`
	TagName   string `json:"tagName"`
	Sentiment string `json:"sentiment,omitempty"`
}

type Article struct {
	ArticleID       int    `json:"articleId"`
	Headline        string `json:"headline"`
	PublicationDate string `json:"publicationDate"`
	Author          string `json:"author"`
	Source          string `json:"source"`
	URL             string `json:"url,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
	Sentiment       string `json:"sentiment"`
	ArticleSummary  string `json:"articleSummary,omitempty"`
	QuoteSummary    string `json:"quoteSummary,omitempty"`
	QuoteSentiment  string `json:"quoteSentiment,omitempty"`
	Tags            []Tag  `json:"tags"`
}

// ArticlesPage is one page of a list view. Page is 1-based.
type ArticlesPage struct {
	Articles  []Article `json:"articles"`
	Page      int       `json:"page"`
	PageCount int       `json:"pageCount"`
	PageSize  int       `json:"pageSize"`
	Total     int       `json:"total"`
	Sources   []string  `json:"sources"`
	Term      string    `json:"term"`
	Searching bool      `json:"searching"`
}

type MutationResult struct {
	Applied bool     `json:"applied"`
	Article *Article `json:"article,omitempty"`
}

type Summary struct {
	TotalArticles int          `json:"totalArticles"`
	Positive      int          `json:"positive"`
	Negative      int          `json:"negative"`
	Neutral       int          `json:"neutral"`
	Text          string       `json:"text"`
	Share         charts.Share `json:"share"`
}

type Insights struct {
	Scope      string            `json:"scope"`
	RangeLabel string            `json:"rangeLabel"`
	Sources    charts.Chart      `json:"sources"`
	TopTags    charts.Chart      `json:"topTags"`
	Summary    *Summary          `json:"summary,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

type QuotedPerson struct {
	QuoteID      int    `json:"quoteId"`
	PersonQuoted string `json:"personQuoted"`
}

type Session struct {
	Authenticated bool   `json:"authenticated"`
	Loading       bool   `json:"loading"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
	Error         string `json:"error,omitempty"`
}

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type JournalEntry struct {
	EntryID   int       `json:"entryId"`
	Workspace string    `json:"workspace"`
	Operation string    `json:"operation"`
	ArticleID int       `json:"articleId"`
	Applied   bool      `json:"applied"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type JournalPage struct {
	Entries []JournalEntry `json:"entries"`
	Total   int            `json:"total"`
}

// Request bodies.

type SentimentRequest struct {
	Sentiment string `json:"sentiment"`
}

type TagRequest struct {
	TagName string `json:"tagName"`
}

type FieldRequest struct {
	Value string `json:"value"`
}

type QuoteRequest struct {
	Quote     string `json:"quote"`
	Person    string `json:"person"`
	Sentiment string `json:"sentiment"`
}

type ChatRequest struct {
	Query string `json:"query"`
}

type SourceFilterRequest struct {
	Sources []string `json:"sources"`
}
