package rest

import (
	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/charts"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
	"github.com/daniilsolovey/powersector-desk/internal/session"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewTag(t backend.Tag) Tag {
	return Tag{
		TagID:     t.TagID,
		TagName:   t.TagName,
		Sentiment: string(t.Sentiment),
	}
}

func NewArticle(a backend.Article) Article {
	return Article{
		ArticleID:       a.ArticleID,
		Headline:        a.Headline,
		PublicationDate: a.PublicationDate,
		Author:          a.Author,
		Source:          a.Source,
		URL:             a.URL,
		ImageURL:        a.ImageURL,
		Sentiment:       string(a.EffectiveSentiment()),
		ArticleSummary:  a.ArticleSummary,
		QuoteSummary:    a.QuoteSummary,
		QuoteSentiment:  string(a.QuoteSentiment),
		Tags:            Map(a.Tags, NewTag),
	}
}

func NewArticlesPage(s desk.Snapshot) ArticlesPage {
	sources := s.Sources
	if sources == nil {
		sources = []string{}
	}
	return ArticlesPage{
		Articles:  Map(s.Articles, NewArticle),
		Page:      s.Page + 1,
		PageCount: s.PageCount,
		PageSize:  s.PageSize,
		Total:     s.Total,
		Sources:   sources,
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
			Positive:      d.Summary.Positive,
			Negative:      d.Summary.Negative,
			Neutral:       d.Summary.Neutral,
			Text:          d.Summary.Summary,
			Share:         charts.SummaryShare(*d.Summary),
		}
	}
	return in
}

func NewQuotedPerson(p backend.QuotedPerson) QuotedPerson {
	return QuotedPerson{QuoteID: p.QuoteID, PersonQuoted: p.PersonQuoted}
}

func NewSession(st session.State) Session {
	s := Session{
		Authenticated: st.Authenticated,
		Loading:       st.Loading,
		Error:         st.Error,
	}
	if st.User != nil {
		s.Username = st.User.Username
		s.Email = st.User.Email
	}
	return s
}

func NewChatMessage(m desk.Message) ChatMessage {
	return ChatMessage{Role: m.Role, Text: m.Text}
}

func NewJournalEntry(e db.JournalEntry) JournalEntry {
	entry := JournalEntry{
		EntryID:   e.ID,
		Workspace: e.Workspace,
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
