// Package api holds the REST collaborators of the admission backend. Every
// call goes through a shared authorized JSON client: bearer token injection,
// single attempt per call (no automatic retry), and verbatim surfacing of
// server-provided error messages.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "admission-client/internal/common/errors"
	clienthttp "admission-client/internal/common/http"
	"admission-client/internal/common/logger"
	"admission-client/internal/common/metrics"
)

// serverErrorBody is the backend's error envelope. Both field spellings are
// seen in the wild; Message wins when both are present.
type serverErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client is the shared transport for all collaborator groups.
type Client struct {
	baseURL string
	http    *clienthttp.Client
	logger  logger.Logger
}

// NewClient builds the shared transport. tokens supplies the bearer token
// for each request, empty meaning unauthenticated.
func NewClient(baseURL string, timeout time.Duration, tokens clienthttp.TokenSource, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    clienthttp.NewClient(timeout, tokens),
		logger:  log,
	}
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.doJSON(req, path, out)
}

// postJSON issues a POST with a JSON body and decodes the response into out.
// body may be nil for bodyless posts, out may be nil to discard the response.
func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out interface{}) error {
	return c.sendJSON(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError(fmt.Errorf("encode request body: %w", err))
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.doJSON(req, path, out)
}

// doJSON executes the request once and maps the outcome: transport failures
// become retryable TRANSPORT errors, 401 forces the unauthorized path, other
// non-2xx statuses surface the server's own message.
func (c *Client) doJSON(req *http.Request, metricPath string, out interface{}) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(metricPath, req.Method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error("Request failed", map[string]interface{}{
			"method": req.Method,
			"path":   metricPath,
			"error":  err.Error(),
		})
		return apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.logger.Warn("Server rejected request", map[string]interface{}{
			"method": req.Method,
			"path":   metricPath,
			"status": resp.StatusCode,
		})
		return err
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewInternalError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// checkStatus maps a completed response to an error, nil for 2xx.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		return apperrors.NewUnauthorizedError()
	}
	return apperrors.NewServerError(resp.StatusCode, readServerMessage(resp.Body))
}

// readServerMessage pulls the human-readable message out of an error body.
// Empty when the body is missing or not the expected envelope.
func readServerMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64*1024))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var envelope serverErrorBody
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
