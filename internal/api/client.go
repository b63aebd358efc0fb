// Package api is the HTTP gateway to the fake-news detector backend.
// Every failure is normalized to *Error so callers can distinguish
// "the server said no" from "nothing answered".
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// TokenSource yields the current bearer token, or "" when logged out.
type TokenSource func() string

// Client talks to the detector backend.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     *zap.Logger
}

// NewClient creates a reusable gateway. token may be nil for a client
// that never authenticates.
func NewClient(baseURL string, timeout time.Duration, token TokenSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

// Register creates an account. The backend does not log the user in.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.postJSON(ctx, "/auth/register", reg, nil)
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.postJSON(ctx, "/auth/login", creds, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Me fetches the profile for the current token.
func (c *Client) Me(ctx context.Context) (Profile, error) {
	var p Profile
	err := c.getJSON(ctx, "/auth/me", nil, &p)
	return p, err
}

// NewsHistory returns the most recent prediction records, newest first.
func (c *Client) NewsHistory(ctx context.Context, limit int) ([]NewsRecord, error) {
	var records []NewsRecord
	err := c.getJSON(ctx, "/history/news", map[string]string{"limit": strconv.Itoa(limit)}, &records)
	return records, err
}

// GeneratedHistory returns the most recent generated articles, newest first.
func (c *Client) GeneratedHistory(ctx context.Context, limit int) ([]GeneratedRecord, error) {
	var records []GeneratedRecord
	err := c.getJSON(ctx, "/history/generated", map[string]string{"limit": strconv.Itoa(limit)}, &records)
	return records, err
}

// Predict submits text for classification by both models.
func (c *Client) Predict(ctx context.Context, news string) (PredictResponse, error) {
	var resp PredictResponse
	err := c.postJSON(ctx, "/predict", map[string]string{"news": news}, &resp)
	return resp, err
}

// Generate requests a synthetic article. The response body is plain text.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Message: err.Error()}
	}
	return string(text), nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req, v)
}

func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for k, val := range query {
			q.Set(k, val)
		}
		req.URL.RawQuery = q.Encode()
	}

	return c.doJSON(req, v)
}

func (c *Client) doJSON(req *http.Request, v any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	return nil
}

// do sends the request with the bearer token attached and normalizes
// the outcome. Callers own the response body only on a nil error.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.log.Debug("api request", zap.String("method", req.Method), zap.String("path", req.URL.Path))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api transport failure", zap.String("path", req.URL.Path), zap.Error(err))
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		msg := readErrorMessage(resp.Body)
		resp.Body.Close()
		if msg == "" {
			msg = fmt.Sprintf("HTTP Error: %d", resp.StatusCode)
		}
		c.log.Warn("api error response",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return nil, &Error{Kind: KindServer, Status: resp.StatusCode, Message: msg}
	}

	c.log.Debug("api response", zap.String("path", req.URL.Path), zap.Int("status", resp.StatusCode))
	return resp, nil
}

// readErrorMessage pulls the human-readable message out of an error body.
// The backend uses {"detail": ...} (FastAPI) but {"message": ...} is
// accepted too.
func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}

	var parsed struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return parsed.Detail
}
