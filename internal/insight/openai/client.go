// Package openai implements insight.Client using the OpenAI Chat
// Completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"resume-ats/internal/insight"
)

// var so tests can point the client at a local server.
var apiURL = "https://api.openai.com/v1/chat/completions"

const defaultHTTPTimeout = 120 * time.Second

// Client calls OpenAI Chat Completions with a JSON response format.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs an OpenAI-backed insight client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("OPENAI_MODEL is required")
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float32        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Enrich asks the model for a structured summary of resumeText.
func (c *Client) Enrich(ctx context.Context, resumeText string) (insight.Summary, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPromptPrefix + resumeText},
		},
		Temperature:    0,
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return insight.Summary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return insight.Summary{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return insight.Summary{}, fmt.Errorf("%w: %v", insight.ErrProviderUnavailable, unwrapTransportError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return insight.Summary{}, fmt.Errorf("%w: read body: %v", insight.ErrProviderUnavailable, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return insight.Summary{}, fmt.Errorf("%w: %v", insight.ErrMalformedResponse, err)
	}
	if parsed.Error != nil {
		return insight.Summary{}, fmt.Errorf("%w: %s (%s)", insight.ErrProviderError, parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode != http.StatusOK {
		return insight.Summary{}, fmt.Errorf("%w: status %d", insight.ErrProviderError, resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return insight.Summary{}, fmt.Errorf("%w: response missing choices", insight.ErrProviderError)
	}

	content := cleanJSON(parsed.Choices[0].Message.Content)
	if content == "" {
		return insight.Summary{}, fmt.Errorf("%w: empty content", insight.ErrMalformedResponse)
	}

	var summary insight.Summary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return insight.Summary{}, fmt.Errorf("%w: %v", insight.ErrMalformedResponse, err)
	}
	return summary, nil
}

// cleanJSON strips markdown code fences some models wrap around JSON output.
func cleanJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func unwrapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("request timeout: %w", err)
	}
	return err
}

var _ insight.Client = (*Client)(nil)
