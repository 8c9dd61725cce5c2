package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultURL     = "http://127.0.0.1:11434"
	defaultModel   = "llama3"
	defaultTimeout = 120 * time.Second
	generatePath   = "/api/generate"
)

// Client talks to a local Ollama server through its generate endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	logger     *zap.Logger
}

// generateResponse covers both payload shapes the endpoint is known to
// produce: the native response field and an OpenAI-style choices list.
type generateResponse struct {
	Response string `json:"response"`
	Choices  []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error string `json:"error"`
}

// New creates a Client. Empty arguments fall back to the local defaults.
func New(baseURL, model string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL == "" {
		baseURL = defaultURL
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		model:      model,
		logger:     logger,
	}
}

// GenerateContent sends the prompt to the generate endpoint and returns the
// text payload.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	payload, err := json.Marshal(map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := c.baseURL + generatePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("ollama generate request",
		zap.String("url", url),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %s", resp.Status)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	if result.Error != "" {
		return "", fmt.Errorf("ollama error: %s", result.Error)
	}

	if text := strings.TrimSpace(result.Response); text != "" {
		return text, nil
	}

	if len(result.Choices) > 0 {
		if text := strings.TrimSpace(result.Choices[0].Message.Content); text != "" {
			return text, nil
		}
	}

	return "", errors.New("ollama returned an unexpected response structure")
}

func (c *Client) Provider() string {
	return "ollama"
}

func (c *Client) Model() string {
	return c.model
}
