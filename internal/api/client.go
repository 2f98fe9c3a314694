package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// TokenSource yields the current bearer token, if a session exists.
type TokenSource interface {
	Token() (string, bool)
}

// RequestError carries a non-2xx response back to the caller. The response
// body text becomes the user-visible message.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if strings.TrimSpace(e.Body) != "" {
		return strings.TrimSpace(e.Body)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsStatus reports whether err is a RequestError with the given status.
func IsStatus(err error, status int) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == status
}

// Client is the single outbound door to the storefront API. Every request
// carries Content-Type and the demo token; authenticated requests add a
// bearer token from the session.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	demoToken string
	tokens    TokenSource
	log       *zap.Logger
}

func NewClient(baseURL, demoToken string, tokens TokenSource, httpClient *http.Client, log *zap.Logger) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid api base url %q: %v", baseURL, err))
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{baseURL: u, http: httpClient, demoToken: demoToken, tokens: tokens, log: log}
}

// Call performs one JSON round trip. body and out may be nil. A non-2xx
// response becomes a *RequestError; no retries.
func (c *Client) Call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.demoToken != "" {
		req.Header.Set("X-Demo-Token", c.demoToken)
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		c.log.Debug("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &RequestError{Status: resp.StatusCode, Body: string(text)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
