package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const maxTextMessage = 200

// APIError is returned for every non-2xx response of the news API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	return &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Message:    messageFromBody(status, body),
		Body:       string(body),
	}
}

// messageFromBody extracts a human readable message: message, error or detail keys of a JSON
// body, a short plain-text body, or the generic HTTP status text.
func messageFromBody(status int, body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := obj[key].(string); ok && v != "" {
				return v
			}
		}
	}

	text := strings.TrimSpace(string(body))
	if text != "" && len(text) <= maxTextMessage && !strings.HasPrefix(text, "<") && !strings.HasPrefix(text, "{") {
		return text
	}

	if st := http.StatusText(status); st != "" {
		return fmt.Sprintf("HTTP %d %s", status, st)
	}
	return fmt.Sprintf("HTTP %d", status)
}
