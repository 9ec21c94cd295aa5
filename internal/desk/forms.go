package desk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

const (
	MsgRequiredFields   = "Please fill in all required fields"
	MsgPasswordMismatch = "Passwords do not match"
	MsgTermsRequired    = "You must agree to the Terms and Conditions"
	MsgRegistered       = "Registration successful!"
	MsgNetworkError     = "Network error, please try again."
	MsgQuoteFields      = "Quote, person and sentiment are required"

	dateLayout = "2006-01-02"
)

type RegistrationForm struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
	Terms     bool
}

// Validate applies the sign-up checks in the order editors see them.
func (f RegistrationForm) Validate() error {
	if f.Username == "" || f.Email == "" || f.Password1 == "" || f.Password2 == "" {
		return invalid(MsgRequiredFields)
	}
	if f.Password1 != f.Password2 {
		return invalid(MsgPasswordMismatch)
	}
	if !f.Terms {
		return invalid(MsgTermsRequired)
	}
	return nil
}

type Registrar interface {
	Register(ctx context.Context, r backend.RegisterRequest) error
}

// Register validates the form and, only if it passes, creates the account.
func Register(ctx context.Context, api Registrar, f RegistrationForm) error {
	if err := f.Validate(); err != nil {
		return err
	}

	err := api.Register(ctx, backend.RegisterRequest{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password1,
	})
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	return nil
}

// Notice turns a form or mutation error into the message shown to the editor.
func Notice(err error) string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Message
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return "Error: " + apiErr.Message
	}
	return MsgNetworkError
}

type ArticleForm struct {
	Headline        string
	Sentiment       string
	Summary         string
	Author          string
	Source          string
	PublicationDate string
	URL             string
	// Tags is a comma separated list.
	Tags string
}

// Build validates the form and returns the create payload with a fresh unique id.
func (f ArticleForm) Build() (backend.NewArticle, error) {
	headline := strings.TrimSpace(f.Headline)
	if headline == "" {
		return backend.NewArticle{}, invalid("Article heading is required")
	}

	s, err := backend.ParseSentiment(strings.TrimSpace(f.Sentiment))
	if err != nil {
		return backend.NewArticle{}, invalid("Choose a sentiment")
	}

	date := strings.TrimSpace(f.PublicationDate)
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return backend.NewArticle{}, invalid("Publishing date must be YYYY-MM-DD")
		}
	}

	tags, err := ParseTags(f.Tags)
	if err != nil {
		return backend.NewArticle{}, err
	}

	return backend.NewArticle{
		UniqueID:        uuid.NewString(),
		Headline:        headline,
		Sentiment:       s,
		ArticleSummary:  strings.TrimSpace(f.Summary),
		Author:          strings.TrimSpace(f.Author),
		Source:          strings.TrimSpace(f.Source),
		PublicationDate: date,
		URL:             strings.TrimSpace(f.URL),
		Tags:            tags,
	}, nil
}

// ParseTags splits a comma separated tag list. Empty input yields no tags; an empty element
// such as in "a,,b" is rejected.
func ParseTags(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, invalid("Enter tags separated by commas, e.g. tag1, tag2, tag3")
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		tags = append(tags, p)
	}
	return tags, nil
}

type ArticleCreator interface {
	CreateArticle(ctx context.Context, a backend.NewArticle) error
}

// CreateArticle validates the form and submits it.
func CreateArticle(ctx context.Context, api ArticleCreator, f ArticleForm) (backend.NewArticle, error) {
	a, err := f.Build()
	if err != nil {
		return backend.NewArticle{}, err
	}

	if err := api.CreateArticle(ctx, a); err != nil {
		return backend.NewArticle{}, fmt.Errorf("failed to create article: %w", err)
	}
	return a, nil
}

// ValidateQuote checks the three quote fields and builds the payload.
func ValidateQuote(articleID int, quote, person string, s backend.Sentiment) (backend.Quote, error) {
	quote = strings.TrimSpace(quote)
	person = strings.TrimSpace(person)
	if quote == "" || person == "" || !s.Valid() {
		return backend.Quote{}, invalid(MsgQuoteFields)
	}

	return backend.Quote{
		ArticleID: articleID,
		Quote:     quote,
		Sentiment: s,
		Person:    person,
	}, nil
}
