package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"agropulse/config"
)

// ErrNotConfigured is returned by Complete when no API key is set. The
// service layer treats it like any other provider failure and falls back
// to mock content, but callers can branch on it with errors.Is.
var ErrNotConfigured = errors.New("llm: api key not configured")

// Client is an OpenAI-compatible chat-completions client.
//
// It posts to {BaseURL}/chat/completions with bearer authentication and
// returns the first choice's message content. The zero value is not
// usable; construct with NewClient.
type Client struct {
	httpClient *http.Client
	cfg        config.LLMConfig
}

// NewClient builds a Client from LLM configuration. The HTTP client's
// timeout comes from cfg.Timeout (default 30s via config defaults).
func NewClient(cfg config.LLMConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
	}
}

// CloseIdleConnections releases pooled connections. Called from the
// application cleanup on shutdown.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// chatRequest is the wire format of POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the completion response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete implements Provider against the configured upstream.
//
// Returns:
//   - string: the assistant's reply text.
//   - error: ErrNotConfigured when no key is set; otherwise transport,
//     decoding, or upstream errors wrapped with context.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.cfg.Configured() {
		return "", ErrNotConfigured
	}

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
		Temperature: c.cfg.Temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("llm: encode request: %w", err)
	}

	url := c.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("llm: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(raw)
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("llm: upstream returned %d: %s", resp.StatusCode, msg)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("llm: upstream returned no choices")
	}

	return out.Choices[0].Message.Content, nil
}

var _ Provider = (*Client)(nil)
