package backend

import (
	"context"
	"net/http"
)

const (
	sourcesSentimentPath         = "/articles/news-sources-sentiment/"
	verifiedSourcesSentimentPath = "/articles/verified-news-sources-sentiment/"
	topTagsPath                  = "/articles/top-repeated-tags/"
	verifiedTopTagsPath          = "/articles/verified-top-repeated-tags/"
	newsSummaryPath              = "/articles/news-summary/"
	quotedPersonsPath            = "/articles/get-quotes/"
	verifiedQuotesPath           = "/articles/verified-quotes/"
	agentPath                    = "/articles/power-sector-agent-db/"
)

// SourcesSentiment returns the sentiment distribution per news source.
func (c *Client) SourcesSentiment(ctx context.Context, scope Scope, r DateRange) ([]Row, error) {
	path := sourcesSentimentPath
	if scope == ScopeVerified {
		path = verifiedSourcesSentimentPath
	}

	var rows []Row
	if _, err := c.do(ctx, http.MethodPost, path, nil, r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TopTags returns the most repeated tags with their sentiment split.
func (c *Client) TopTags(ctx context.Context, scope Scope, r DateRange) ([]Row, error) {
	path := topTagsPath
	if scope == ScopeVerified {
		path = verifiedTopTagsPath
	}

	var rows []Row
	if _, err := c.do(ctx, http.MethodPost, path, nil, r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) NewsSummary(ctx context.Context, r DateRange) (*Summary, error) {
	var s Summary
	if _, err := c.do(ctx, http.MethodPost, newsSummaryPath, nil, r, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) QuotedPersons(ctx context.Context) ([]QuotedPerson, error) {
	var list []QuotedPerson
	if _, err := c.do(ctx, http.MethodGet, quotedPersonsPath, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// VerifiedQuotes returns the monthly verified quote sentiment of one person.
func (c *Client) VerifiedQuotes(ctx context.Context, person string) ([]QuoteMonth, error) {
	var list []QuoteMonth
	if _, err := c.do(ctx, http.MethodPost, verifiedQuotesPath, nil, map[string]any{"quote": person}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Ask forwards a question to the power sector agent and returns its answer.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	var resp struct {
		Answer string `json:"answer"`
	}
	if _, err := c.do(ctx, http.MethodPost, agentPath, nil, map[string]any{"query": query}, &resp); err != nil {
		return "", err
	}
	return resp.Answer, nil
}
