package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultCSRFCookie = "csrftoken"
	CSRFHeader        = "X-CSRFToken"

	defaultTimeout  = 15 * time.Second
	maxResponseSize = 8 << 20
	contentTypeJSON = "application/json"
)

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	CSRFCookie string
	// HTTPClient overrides the transport; a cookie jar is attached when it has none.
	HTTPClient *http.Client
}

// Client talks to the news API on behalf of one editor. It owns the cookie jar holding the
// backend session, so a Client must not be shared between editors.
type Client struct {
	baseURL    *url.URL
	csrfCookie string
	http       *http.Client
	log        *slog.Logger
}

func New(opts Options, log *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	hc := &http.Client{}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		hc = &copied
	}
	if hc.Jar == nil {
		hc.Jar = jar
	}
	if hc.Timeout == 0 {
		hc.Timeout = opts.Timeout
		if hc.Timeout == 0 {
			hc.Timeout = defaultTimeout
		}
	}

	csrfCookie := opts.CSRFCookie
	if csrfCookie == "" {
		csrfCookie = DefaultCSRFCookie
	}

	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL:    base,
		csrfCookie: csrfCookie,
		http:       hc,
		log:        log,
	}, nil
}

// CSRFToken returns the value of the CSRF cookie the backend set for the base URL, or an
// empty string. The cookie is located by name, whatever else the jar holds.
func (c *Client) CSRFToken() string {
	for _, ck := range c.http.Jar.Cookies(c.baseURL) {
		if ck.Name == c.csrfCookie {
			return ck.Value
		}
	}
	return ""
}

// CSRFTokenFromHeader finds the named cookie in a raw Cookie header value.
func CSRFTokenFromHeader(raw, name string) string {
	if name == "" {
		name = DefaultCSRFCookie
	}
	r := http.Request{Header: http.Header{"Cookie": []string{raw}}}
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL.String() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs one API call. in is JSON encoded when non-nil; out is decoded from a
// non-empty 2xx body when non-nil. The status code is returned for callers that care
// about exact success codes.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if in != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if isMutating(method) {
		if token := c.CSRFToken(); token != "" {
			req.Header.Set(CSRFHeader, token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	c.log.Debug("backend call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, newAPIError(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response %s %s: %w", method, path, err)
	}

	return resp.StatusCode, nil
}
