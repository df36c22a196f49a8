package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RequestError covers the whole transport failure taxonomy: network errors,
// timeouts, non-2xx responses and undecodable bodies. "Not found" is never a
// RequestError; lookups report it as a nil record or empty list.
type RequestError struct {
	Status int
	Body   string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cms request failed: %v", e.Err)
	}
	return fmt.Sprintf("cms request failed: status %d: %s", e.Status, e.Body)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err is (or wraps) a CMS transport failure.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// Client talks to a Strapi-style content API. All reads are fresh fetches;
// the CMS is the only system of record.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a CMS client. An empty token means unauthenticated requests,
// which the CMS permits for public read-only content.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: trimSlash(baseURL),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// BaseURL returns the configured CMS base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// apiResponse is the outer envelope every CMS endpoint returns.
type apiResponse struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*apiResponse, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// post sends a create request. The CMS expects payloads wrapped in a
// {"data": {...}} envelope.
func (c *Client) post(ctx context.Context, path string, payload interface{}) (*apiResponse, error) {
	return c.do(ctx, http.MethodPost, path, nil, map[string]interface{}{"data": payload})
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*apiResponse, error) {
	endpoint := c.baseURL + "/api" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{Status: resp.StatusCode, Body: string(raw)}
	}

	var out apiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &RequestError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return &out, nil
}

// Ping checks connectivity by requesting a single record from the services
// collection. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) bool {
	q := url.Values{}
	q.Set("pagination[pageSize]", "1")
	_, err := c.get(ctx, "/services", q)
	return err == nil
}
