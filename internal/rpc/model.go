package rpc

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
	Sentiment       string `json:"sentiment"`
	ArticleSummary  string `json:"articleSummary,omitempty"`
	QuoteSummary    string `json:"quoteSummary,omitempty"`
	Tags            Tags   `json:"tags"`
}

type ArticlesPage struct {
	Articles  Articles `json:"articles"`
	Page      int      `json:"page"`
	PageCount int      `json:"pageCount"`
	Total     int      `json:"total"`
	Term      string   `json:"term,omitempty"`
	Searching bool     `json:"searching"`
}

type MutationResult struct {
	Applied bool     `json:"applied"`
	Article *Article `json:"article,omitempty"`
}

type Session struct {
	Authenticated bool   `json:"authenticated"`
	Loading       bool   `json:"loading"`
	Username      string `json:"username,omitempty"`
}

type Summary struct {
	TotalArticles int          `json:"totalArticles"`
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

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type JournalEntry struct {
	EntryID   int       `json:"entryId"`
	Operation string    `json:"operation"`
	ArticleID int       `json:"articleId"`
	Applied   bool      `json:"applied"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type JournalPage struct {
	Entries JournalEntries `json:"entries"`
	Total   int            `json:"total"`
}
