package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPConfig holds configuration for the HTTP agent client.
type HTTPConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// DefaultHTTPConfig returns sensible defaults. Agent calls can take a while
// when the upstream model is thinking, so the timeout is generous.
func DefaultHTTPConfig(apiKey, baseURL string) HTTPConfig {
	return HTTPConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: 120 * time.Second,
	}
}

// HTTPClient implements Client over a JSON POST endpoint.
type HTTPClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a new HTTP agent client.
func NewHTTPClient(config HTTPConfig) *HTTPClient {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type callRequest struct {
	Prompt  string      `json:"prompt"`
	AgentID string      `json:"agent_id"`
	Options callSession `json:"options"`
}

type callSession struct {
	SessionID string `json:"session_id"`
}

// Call posts the prompt to the agent endpoint and decodes the reply
// leniently. A reachable endpoint answering 2xx always yields a CallResult,
// even when the body reports success=false; network failures, non-2xx
// statuses, and undecodable bodies surface as ErrTransport.
func (c *HTTPClient) Call(ctx context.Context, prompt string, opts CallOptions) (*CallResult, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	start := time.Now()
	c.logger.Debug("agent call",
		zap.String("agent_id", opts.AgentID),
		zap.String("session_id", opts.SessionID),
		zap.Int("prompt_len", len(prompt)))

	body, err := json.Marshal(callRequest{
		Prompt:  prompt,
		AgentID: opts.AgentID,
		Options: callSession{SessionID: opts.SessionID},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/call", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("agent call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("agent call non-2xx",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_len", len(data)))
		return nil, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	var result CallResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrTransport, err)
	}

	c.logger.Debug("agent call done",
		zap.Bool("success", result.Success),
		zap.Duration("elapsed", time.Since(start)))

	return &result, nil
}
