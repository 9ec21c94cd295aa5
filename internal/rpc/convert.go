package rpc

import (
	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/charts"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
	"github.com/daniilsolovey/powersector-desk/internal/session"
)

func NewArticle(a backend.Article) Article {
	return Article{
		ArticleID:       a.ArticleID,
		Headline:        a.Headline,
		PublicationDate: a.PublicationDate,
		Author:          a.Author,
		Source:          a.Source,
		URL:             a.URL,
		Sentiment:       string(a.EffectiveSentiment()),
		ArticleSummary:  a.ArticleSummary,
		QuoteSummary:    a.QuoteSummary,
		Tags:            NewTags(a.Tags),
	}
}

func NewTag(t backend.Tag) Tag {
	return Tag{
		TagID:     t.TagID,
		TagName:   t.TagName,
		Sentiment: string(t.Sentiment),
	}
}

func NewArticlesPage(s desk.Snapshot) ArticlesPage {
	return ArticlesPage{
		Articles:  NewArticles(s.Articles),
		Page:      s.Page + 1,
		PageCount: s.PageCount,
		Total:     s.Total,
		Term:      s.Term,
		Searching: s.Searching,
	}
}

func NewMutationResult(r desk.Result) MutationResult {
	res := MutationResult{Applied: r.Applied}
	if r.Article.ArticleID != 0 {
		a := NewArticle(r.Article)
		res.Article = &a
	}
	return res
}

func NewSession(st session.State) Session {
	s := Session{Authenticated: st.Authenticated, Loading: st.Loading}
	if st.User != nil {
		s.Username = st.User.Username
	}
	return s
}

func NewInsights(d desk.InsightsData) Insights {
	in := Insights{
		Scope:      string(d.Scope),
		RangeLabel: d.RangeLabel,
		Sources:    charts.SentimentBars(charts.SourcesTitle, d.Sentiment, "source"),
		TopTags:    charts.SentimentBars(charts.TagsTitle, d.TopTags, "tag_name"),
	}
	if len(d.Errors) > 0 {
		in.Errors = d.Errors
	}
	if d.Summary != nil {
		in.Summary = &Summary{
			TotalArticles: d.Summary.TotalArticles,
			Text:          d.Summary.Summary,
			Share:         charts.SummaryShare(*d.Summary),
		}
	}
	return in
}

func NewJournalEntry(e db.JournalEntry) JournalEntry {
	entry := JournalEntry{
		EntryID:   e.ID,
		Operation: e.Operation,
		ArticleID: e.ArticleID,
		Applied:   e.Applied,
		CreatedAt: e.CreatedAt,
	}
	if e.Error != nil {
		entry.Error = *e.Error
	}
	return entry
}
