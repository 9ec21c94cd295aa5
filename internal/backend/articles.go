package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	articlesPath               = "/articles/get/"
	searchArticlesPath         = "/articles/search/"
	verifiedArticlesPath       = "/articles/verified/"
	searchVerifiedArticlesPath = "/articles/verified-search/"
	createArticlePath          = "/articles/addarticle/"
	setTagSentimentPath        = "/articles/set_tag_sentiment/"
	addQuotePath               = "/articles/add-quote/"
	sourcesPath                = "/articles/sources/"

	verifiedStatus = "Verified"
	pendingStatus  = "Pending"
)

var updateFieldPaths = map[Field]string{
	FieldURL:    "/articles/update_url/",
	FieldAuthor: "/articles/update_author/",
	FieldSource: "/articles/update_source/",
}

func articlePath(id int, action string) string {
	return "/articles/" + strconv.Itoa(id) + "/" + action + "/"
}

func (c *Client) Articles(ctx context.Context) ([]Article, error) {
	var list []Article
	if _, err := c.do(ctx, http.MethodGet, articlesPath, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SearchArticles(ctx context.Context, q string) ([]Article, error) {
	var list []Article
	if _, err := c.do(ctx, http.MethodGet, searchArticlesPath, url.Values{"q": {q}}, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) VerifiedArticles(ctx context.Context) ([]Article, error) {
	var list []Article
	if _, err := c.do(ctx, http.MethodGet, verifiedArticlesPath, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SearchVerifiedArticles(ctx context.Context, q string) ([]Article, error) {
	var list []Article
	if _, err := c.do(ctx, http.MethodGet, searchVerifiedArticlesPath, url.Values{"q": {q}}, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateArticle(ctx context.Context, a NewArticle) error {
	_, err := c.do(ctx, http.MethodPost, createArticlePath, nil, a, nil)
	return err
}

func (c *Client) SetSentiment(ctx context.Context, id int, s Sentiment) error {
	_, err := c.do(ctx, http.MethodPut, articlePath(id, "article_sentiment"), nil,
		map[string]any{"sentiment": s}, nil)
	return err
}

func (c *Client) Verify(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodPut, articlePath(id, "verify"), nil,
		map[string]any{"verification_status": verifiedStatus}, nil)
	return err
}

func (c *Client) Unverify(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodPut, articlePath(id, "unverify"), nil,
		map[string]any{"verification_status": pendingStatus}, nil)
	return err
}

func (c *Client) AddTag(ctx context.Context, id int, name string) error {
	_, err := c.do(ctx, http.MethodPut, articlePath(id, "add_tag"), nil,
		map[string]any{"tag_name": name}, nil)
	return err
}

// RemoveTag sends the tag name in the DELETE request body.
func (c *Client) RemoveTag(ctx context.Context, id int, name string) error {
	_, err := c.do(ctx, http.MethodDelete, articlePath(id, "remove_tag"), nil,
		map[string]any{"tag_name": name}, nil)
	return err
}

func (c *Client) SetTagSentiment(ctx context.Context, id int, tag string, s Sentiment) error {
	_, err := c.do(ctx, http.MethodPost, setTagSentimentPath, nil, map[string]any{
		"article_id": id,
		"tag":        tag,
		"sentiment":  s,
	}, nil)
	return err
}

func (c *Client) DeleteArticle(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, articlePath(id, "delete"), nil, nil, nil)
	return err
}

func (c *Client) UpdateField(ctx context.Context, id int, field Field, value string) error {
	path, ok := updateFieldPaths[field]
	if !ok {
		return fmt.Errorf("field %q cannot be updated", field)
	}

	_, err := c.do(ctx, http.MethodPut, path, nil, map[string]any{
		"article_id":  id,
		string(field): value,
	}, nil)
	return err
}

func (c *Client) AddQuote(ctx context.Context, q Quote) error {
	_, err := c.do(ctx, http.MethodPost, addQuotePath, nil, q, nil)
	return err
}

// Sources returns the news source vocabulary, optionally narrowed by a prefix.
func (c *Client) Sources(ctx context.Context, prefix string) ([]SourceOption, error) {
	var list []SourceOption
	if _, err := c.do(ctx, http.MethodPost, sourcesPath, nil, map[string]any{"source": prefix}, &list); err != nil {
		return nil, err
	}
	return list, nil
}
