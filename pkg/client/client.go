// Package client is the Go SDK for the ClaimScout HTTP API.
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

	"github.com/google/uuid"
)

const Version = "0.1.0"

// Logger defines the logging interface used by the Client.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Errorf(format string, args ...interface{}) {}

// Client is the ClaimScout SDK client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     Logger
	retryMax   int
	retryWait  time.Duration
}

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("claimscout: HTTP %d: %s [request_id=%s]", e.StatusCode, e.Message, e.RequestID)
}

func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// NewClient creates a ClaimScout SDK client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("client: baseURL is required")
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("client: invalid baseURL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("client: baseURL scheme must be http or https")
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  fmt.Sprintf("claimscout-go-sdk/%s", Version),
		logger:     noopLogger{},
		retryMax:   2,
		retryWait:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do performs a JSON request with retry on transport and 5xx failures.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: failed to marshal request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			c.logger.Debugf("retry attempt %d after %v", attempt, c.retryWait)
			select {
			case <-time.After(c.retryWait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		var bodyReader io.Reader
		contentType := ""
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
			contentType = "application/json"
		}
		retryable, err := c.doOnce(ctx, method, path, bodyReader, contentType, result)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return lastErr
}

// doOnce performs a single request. The reported bool says whether the
// failure is worth retrying.
func (c *Client) doOnce(ctx context.Context, method, path string, body io.Reader, contentType string, result interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, fmt.Errorf("client: failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("request failed: %v", err)
		return true, err
	}

	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return true, fmt.Errorf("client: failed to read response body: %w", err)
	}

	c.logger.Debugf("%s %s %d (%v)", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
		}
		var errResp struct {
			Message string `json:"message"`
		}
		if len(respBody) > 0 {
			if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
				apiErr.Message = errResp.Message
			} else {
				apiErr.Message = strings.TrimSpace(string(respBody))
			}
		}
		return apiErr.IsServerError(), apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return false, fmt.Errorf("client: failed to unmarshal response: %w", err)
		}
	}
	return false, nil
}
