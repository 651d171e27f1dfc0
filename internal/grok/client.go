// Package grok implements the client for the xAI chat endpoint.
package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Completer sends a single prompt to a model and returns the generated text.
// Command handlers depend on this interface so tests can substitute a stub.
type Completer interface {
	Complete(ctx context.Context, prompt, model string) (string, error)
}

// Client calls the xAI HTTP API.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient builds a client for the given endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

type completionResponse struct {
	Response string `json:"response"`
}

// APIError is a non-2xx reply from the API. Auth failures, rate limits and
// server errors all surface through it; nothing is retried.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Body)
}

// Complete sends one prompt and returns the model's text response.
func (c *Client) Complete(ctx context.Context, prompt, model string) (string, error) {
	body, err := json.Marshal(completionRequest{Prompt: prompt, Model: model})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	var out completionResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if out.Response == "" {
		return "", fmt.Errorf("empty response from api")
	}
	return out.Response, nil
}
