package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	healthTimeout   = 2 * time.Second
	chatTimeout     = 90 * time.Second
	generateTimeout = 120 * time.Second
)

type client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// New creates a Client for the Ollama HTTP API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("cfg.BaseURL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("cfg.Model is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: httpClient,
	}, nil
}

func unavailable(reason string) string {
	return fmt.Sprintf("[AI unavailable: %s]", reason)
}

func (c *client) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (c *client) Chat(ctx context.Context, messages []Message) string {
	body := map[string]any{
		"model":    c.model,
		"messages": messages,
		"stream":   false,
	}

	var parsed struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if reason := c.post(ctx, "/api/chat", chatTimeout, body, &parsed); reason != "" {
		return unavailable(reason)
	}

	return strings.TrimSpace(parsed.Message.Content)
}

func (c *client) Generate(ctx context.Context, prompt string) string {
	body := map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if reason := c.post(ctx, "/api/generate", generateTimeout, body, &parsed); reason != "" {
		return unavailable(reason)
	}

	return strings.TrimSpace(parsed.Response)
}

// post sends a JSON request and decodes the response into out. It returns
// an empty string on success and a human-readable reason on failure.
func (c *client) post(ctx context.Context, path string, timeout time.Duration, body, out any) string {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Sprintf("encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Sprintf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Sprintf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Sprintf("decode response: %v", err)
	}

	return ""
}
