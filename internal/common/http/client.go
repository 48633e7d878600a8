package http

import (
	"context"
	"net/http"
	"time"
)

// TokenSource supplies the current bearer token, empty when signed out.
type TokenSource interface {
	Token() string
}

// Client is a thin wrapper over net/http that injects the auth header.
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.authorize(req)
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	c.authorize(req)
	return c.httpClient.Do(req)
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
