package client

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
)

// SessionCookieName is where the web frontend keeps the token.
const SessionCookieName = "session"

// APIError carries the server's error envelope alongside the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Invalidator is called with the resource name after every successful
// mutation so the caller can drop cached reads for that resource.
type Invalidator func(resource string)

type Client struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	invalidator Invalidator
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithInvalidator(fn Invalidator) Option {
	return func(c *Client) { c.invalidator = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the session token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// SessionTokenFromJar reads the session cookie for the API host. Returns
// the empty string when the jar has no session.
func SessionTokenFromJar(jar http.CookieJar, baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range jar.Cookies(u) {
		if cookie.Name == SessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope errorEnvelope
		if jsonErr := json.Unmarshal(data, &envelope); jsonErr == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// mutate runs the request and fires the invalidation hook on success.
func (c *Client) mutate(ctx context.Context, method, path string, body, out interface{}, resource string) error {
	if err := c.do(ctx, method, path, body, out); err != nil {
		return err
	}
	if c.invalidator != nil {
		c.invalidator(resource)
	}
	return nil
}
