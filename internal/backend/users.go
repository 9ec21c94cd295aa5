package backend

import (
	"context"
	"net/http"
)

const (
	registerPath = "/users/register/"
	loginPath    = "/users/login/"
	logoutPath   = "/users/logout/"
	sessionPath  = "/users/session/"

	genericRegisterMessage = "Something went wrong"
)

// Register creates an account. Only 201 Created counts as success.
func (c *Client) Register(ctx context.Context, r RegisterRequest) error {
	var resp struct {
		Message string `json:"message"`
	}

	status, err := c.do(ctx, http.MethodPost, registerPath, nil, r, &resp)
	if err != nil {
		return err
	}

	if status != http.StatusCreated {
		msg := resp.Message
		if msg == "" {
			msg = genericRegisterMessage
		}
		return &APIError{StatusCode: status, Method: http.MethodPost, Path: registerPath, Message: msg}
	}

	return nil
}

// Login opens a backend session; the session and CSRF cookies land in the client's jar.
func (c *Client) Login(ctx context.Context, username, password string) error {
	_, err := c.do(ctx, http.MethodPost, loginPath, nil, map[string]any{
		"username": username,
		"password": password,
	}, nil)
	return err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, logoutPath, nil, nil, nil)
	return err
}

func (c *Client) Session(ctx context.Context) (*SessionStatus, error) {
	var s SessionStatus
	if _, err := c.do(ctx, http.MethodGet, sessionPath, nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
