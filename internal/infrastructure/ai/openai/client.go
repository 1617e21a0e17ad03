// Package openai implements the claim-analysis Generator against the OpenAI
// chat completions API. Only the single structured-JSON call the service
// needs is exposed; no SDK dependency, just net/http.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/ClaimScout/internal/domain/patent"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/ClaimScout/pkg/errors"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o"
	defaultTimeout = 60 * time.Second

	systemPrompt = `You are a patent analysis expert. Analyze the given patent claim and provide structured insights. Respond with JSON in this exact format:
{
  "technologyDomain": "string - the main technology field",
  "keyTerms": ["array", "of", "important", "technical", "terms"],
  "claimElements": number - count of distinct claim elements,
  "summary": "string - concise summary of the claim",
  "suggestions": ["array", "of", "new", "claim", "ideas", "based", "on", "gaps"]
}`

	userPromptPrefix = "Analyze this patent claim and identify opportunities for new claims:\n\n"
)

// Config carries the connection settings for the OpenAI-backed generator.
type Config struct {
	APIKey      string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url"`
	Model       string        `mapstructure:"model" yaml:"model"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRetries  int           `mapstructure:"max_retries" yaml:"max_retries"`
}

// DefaultConfig returns the generator settings used when the config file
// leaves the openai section empty. The API key has no default.
func DefaultConfig() Config {
	return Config{
		BaseURL:     defaultBaseURL,
		Model:       defaultModel,
		Temperature: 0.7,
		Timeout:     defaultTimeout,
		MaxRetries:  2,
	}
}

// Client calls the OpenAI chat completions endpoint and shapes the response
// into a patent.AnalysisResult.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient creates an OpenAI generator client. The zero values of cfg fall
// back to DefaultConfig; a missing API key is reported on the first Generate
// call rather than here so the server can still boot for corpus-only use.
func NewClient(cfg Config, logger logging.Logger) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = def.Temperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("openai"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate asks the model for a structured analysis of claimText. Upstream
// fields that are missing or of the wrong JSON type are replaced with the
// documented defaults; any transport or API failure comes back as a
// generation error carrying the upstream message.
func (c *Client) Generate(ctx context.Context, claimText string) (*patent.AnalysisResult, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, apperrors.NewGenerationError("Failed to analyze patent claim: missing OpenAI API key", nil)
	}

	req := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPromptPrefix + claimText},
		},
		Temperature: c.cfg.Temperature,
	}
	req.ResponseFormat.Type = "json_object"

	resp, err := c.post(ctx, "/v1/chat/completions", req)
	if err != nil {
		return nil, apperrors.NewGenerationError("Failed to analyze patent claim: "+err.Error(), err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.NewGenerationError("Failed to analyze patent claim: empty completion", nil)
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		content = "{}"
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, apperrors.NewGenerationError("Failed to analyze patent claim: malformed model output", err)
	}
	return shapeResult(fields), nil
}

func (c *Client) post(ctx context.Context, path string, body chatRequest) (*chatResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	backoff := 500 * time.Millisecond
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		resp, retryable, err := c.postOnce(ctx, path, payload, requestID)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		c.logger.Warn("chat completion retrying",
			logging.Int("attempt", attempt+1),
			logging.String("request_id", requestID),
			logging.Err(err),
		)
	}
	return nil, lastErr
}

func (c *Client) postOnce(ctx context.Context, path string, payload []byte, requestID string) (*chatResponse, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, false, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, true, err
	}
	raw, readErr := io.ReadAll(httpResp.Body)
	_ = httpResp.Body.Close()
	if readErr != nil {
		return nil, true, readErr
	}

	var parsed chatResponse
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &parsed) == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		retryable := httpResp.StatusCode == http.StatusTooManyRequests || httpResp.StatusCode >= 500
		return nil, retryable, &apiError{status: httpResp.StatusCode, message: msg}
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, false, err
	}
	return &parsed, false, nil
}

type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return "openai: " + http.StatusText(e.status) + ": " + e.message
}

// shapeResult applies the per-field type checks and fallbacks to the model's
// JSON object. A string where an array is expected counts as absent.
func shapeResult(fields map[string]any) *patent.AnalysisResult {
	res := &patent.AnalysisResult{
		TechnologyDomain: patent.DefaultTechnologyDomain,
		KeyTerms:         []string{},
		Summary:          patent.DefaultSummary,
		Suggestions:      []string{},
	}
	if v, ok := fields["technologyDomain"].(string); ok && v != "" {
		res.TechnologyDomain = v
	}
	if v, ok := fields["keyTerms"].([]any); ok {
		res.KeyTerms = stringSlice(v)
	}
	if v, ok := fields["claimElements"].(float64); ok {
		res.ClaimElements = int(v)
	}
	if v, ok := fields["summary"].(string); ok && v != "" {
		res.Summary = v
	}
	if v, ok := fields["suggestions"].([]any); ok {
		res.Suggestions = stringSlice(v)
	}
	return res
}

func stringSlice(in []any) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
