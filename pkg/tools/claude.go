package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultClaudeBaseURL = "https://api.anthropic.com"
	defaultClaudeModel   = "claude-sonnet-4-20250514"
	defaultClaudeTokens  = 4096
	anthropicVersion     = "2023-06-01"
)

// ClaudeConfig configures the Claude client. Zero fields fall back to
// defaults; BaseURL exists so tests can point at a local server.
type ClaudeConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
	Timeout   time.Duration
}

// ClaudeClient calls the Anthropic messages API with retry on rate
// limits and server errors.
type ClaudeClient struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
	maxRetries int
	baseDelay  time.Duration
}

// NewClaudeClient creates a Claude client from config.
func NewClaudeClient(cfg ClaudeConfig) *ClaudeClient {
	model := cfg.Model
	if model == "" {
		model = defaultClaudeModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultClaudeTokens
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultClaudeBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ClaudeClient{
		apiKey:     cfg.APIKey,
		model:      model,
		maxTokens:  maxTokens,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: 3,
		baseDelay:  time.Second,
	}
}

// Name implements Tool.
func (c *ClaudeClient) Name() string { return "claude" }

// Capabilities implements Tool.
func (c *ClaudeClient) Capabilities() []string {
	return []string{CapabilityReasoning, CapabilitySynthesis, CapabilityAnalysis, CapabilityVision}
}

// Manifest implements Tool.
func (c *ClaudeClient) Manifest() Manifest {
	return Manifest{
		Name:         c.Name(),
		Version:      "0.1.0",
		Description:  "Anthropic Claude API client with retry and vision support",
		Capabilities: c.Capabilities(),
		ConfigKeys:   []string{"CLAUDE_API_KEY", "CLAUDE_MODEL", "CLAUDE_MAX_TOKENS"},
	}
}

// HealthCheck sends a minimal completion to verify connectivity.
func (c *ClaudeClient) HealthCheck(ctx context.Context) error {
	req := claudeRequest{
		Model:     c.model,
		MaxTokens: 10,
		Messages:  []claudeMessage{{Role: "user", Content: "ping"}},
	}
	_, err := c.send(ctx, req)
	return err
}

// Complete generates a text completion for the prompt. system may be
// empty.
func (c *ClaudeClient) Complete(ctx context.Context, prompt, system string) (string, error) {
	req := claudeRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	}
	return c.send(ctx, req)
}

// CompleteWithImages generates a completion from a prompt plus image
// inputs, for vision analysis.
func (c *ClaudeClient) CompleteWithImages(ctx context.Context, prompt string, images []ImageInput, system string) (string, error) {
	blocks := make([]contentBlock, 0, len(images)+1)
	for _, img := range images {
		switch img.SourceType {
		case "base64":
			blocks = append(blocks, contentBlock{
				Type: "image",
				Source: &imageSource{
					Type:      "base64",
					MediaType: img.MediaType,
					Data:      img.Data,
				},
			})
		case "url":
			blocks = append(blocks, contentBlock{
				Type: "image",
				Source: &imageSource{
					Type: "url",
					URL:  img.Data,
				},
			})
		}
	}
	blocks = append(blocks, contentBlock{Type: "text", Text: prompt})

	req := claudeRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  []claudeMessage{{Role: "user", Content: blocks}},
	}
	return c.send(ctx, req)
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type,omitempty"`
	URL       string `json:"url,omitempty"`
	Data      string `json:"data,omitempty"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// send posts the request with up to maxRetries attempts. Rate limits and
// 5xx responses back off exponentially; other failures return
// immediately.
func (c *ClaudeClient) send(ctx context.Context, reqBody claudeRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay * time.Duration(1<<(attempt-1))
			slog.Warn("Retrying Claude request", "attempt", attempt+1, "delay", delay, "error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, retryable, err := c.doSend(ctx, payload)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return "", &ToolError{Tool: c.Name(), Err: lastErr}
}

func (c *ClaudeClient) doSend(ctx context.Context, payload []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiErrorMessage(body))
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, apiErr
	}

	var parsed claudeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", false, fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return "", false, fmt.Errorf("API error: %s", parsed.Error.Message)
	}
	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, false, nil
		}
	}
	return "", false, fmt.Errorf("no text content in response")
}

func apiErrorMessage(body []byte) string {
	var parsed claudeResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil {
		return parsed.Error.Message
	}
	return string(body)
}

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?\\s*```")

// ExtractJSONObject parses a JSON object out of model output, tolerating
// markdown code fences around it. Returns false when no object can be
// parsed.
func ExtractJSONObject(text string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(text)

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		return obj, true
	}
	if m := jsonFenceRe.FindStringSubmatch(trimmed); m != nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}
