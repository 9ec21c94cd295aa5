package backend

import (
	"encoding/json"
	"fmt"
)

type Sentiment string

const (
	Positive Sentiment = "Positive"
	Neutral  Sentiment = "Neutral"
	Negative Sentiment = "Negative"
)

// Sentiments is the vocabulary offered by every sentiment picker, in display order.
var Sentiments = []Sentiment{Positive, Neutral, Negative}

func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Neutral, Negative:
		return true
	}
	return false
}

func ParseSentiment(v string) (Sentiment, error) {
	s := Sentiment(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown sentiment %q", v)
	}
	return s, nil
}

type Tag struct {
	TagID     int64     `json:"tag_id"`
	TagName   string    `json:"tag_name"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

type Article struct {
	ArticleID       int       `json:"article_id"`
	Headline        string    `json:"headline"`
	PublicationDate string    `json:"publication_date"`
	Author          string    `json:"author,omitempty"`
	Source          string    `json:"source,omitempty"`
	URL             string    `json:"url,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	Sentiment       Sentiment `json:"sentiment,omitempty"`
	ArticleSummary  string    `json:"article_summary,omitempty"`
	QuoteSummary    string    `json:"quote_summary,omitempty"`
	QuoteSentiment  Sentiment `json:"quote_sentiment,omitempty"`
	Tags            []Tag     `json:"tags"`
}

// EffectiveSentiment is the sentiment shown to editors; absent means Neutral.
func (a Article) EffectiveSentiment() Sentiment {
	if a.Sentiment == "" {
		return Neutral
	}
	return a.Sentiment
}

// HasTag reports whether a tag with the given name is attached. Tag names are the identity
// of tags on the client; tag ids may be temporary.
func (a Article) HasTag(name string) bool {
	for _, t := range a.Tags {
		if t.TagName == name {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no tag storage with a.
func (a Article) Clone() Article {
	if a.Tags != nil {
		tags := make([]Tag, len(a.Tags))
		copy(tags, a.Tags)
		a.Tags = tags
	}
	return a
}

type Field string

const (
	FieldURL    Field = "url"
	FieldAuthor Field = "author"
	FieldSource Field = "source"
)

func (f Field) Valid() bool {
	switch f {
	case FieldURL, FieldAuthor, FieldSource:
		return true
	}
	return false
}

type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SessionStatus struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewArticle is the payload of the create form. UniqueID is generated by the caller.
type NewArticle struct {
	UniqueID        string    `json:"unique_id"`
	Headline        string    `json:"headline"`
	Sentiment       Sentiment `json:"sentiment"`
	ArticleSummary  string    `json:"article_summary"`
	Author          string    `json:"author"`
	Source          string    `json:"source"`
	PublicationDate string    `json:"publication_date"`
	URL             string    `json:"url"`
	Tags            []string  `json:"tags"`
}

type Quote struct {
	ArticleID int       `json:"article_id"`
	Quote     string    `json:"quote"`
	Sentiment Sentiment `json:"sentiment"`
	Person    string    `json:"person"`
}

type QuotedPerson struct {
	QuoteID      int    `json:"quote_id"`
	PersonQuoted string `json:"person_quoted"`
}

// QuoteMonth is one month of a person's verified quote sentiment breakdown.
type QuoteMonth struct {
	YearMonth     string `json:"year_month"`
	PositiveCount int    `json:"positive_count"`
	NeutralCount  int    `json:"neutral_count"`
	NegativeCount int    `json:"negative_count"`
	TotalQuotes   int    `json:"total_quotes"`
}

// Row is one aggregate record. Aggregates come in two shapes (raw counts or *_percentage
// fields) and are labelled by different keys, so rows stay loosely typed.
type Row map[string]any

type Summary struct {
	TotalArticles int    `json:"total_articles"`
	Positive      int    `json:"positive"`
	Negative      int    `json:"negative"`
	Neutral       int    `json:"neutral"`
	Summary       string `json:"summary"`
}

// DateRange bounds aggregate queries. Nil bounds are sent as null and the backend falls
// back to its default window.
type DateRange struct {
	Start *string `json:"start_date"`
	End   *string `json:"end_date"`
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeVerified Scope = "verified"
)

// SourceOption is one entry of the news source vocabulary.
type SourceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UnmarshalJSON accepts plain strings, {value,label} and {source} objects.
func (o *SourceOption) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Value, o.Label = s, s
		return nil
	}

	var obj struct {
		Value  string `json:"value"`
		Label  string `json:"label"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode source option: %w", err)
	}

	o.Value = obj.Value
	if o.Value == "" {
		o.Value = obj.Source
	}
	o.Label = obj.Label
	if o.Label == "" {
		o.Label = o.Value
	}
	return nil
}
