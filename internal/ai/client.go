package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// OpenAIClient talks to any server speaking the OpenAI chat completions
// wire format.
type OpenAIClient struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

func New(apiKey, model, baseURL string) *OpenAIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenAIClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

// Configured reports whether a credential is present. Nothing is sent
// upstream without one.
func (c *OpenAIClient) Configured() bool {
	return c != nil && c.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

var errEmptyCompletion = errors.New("ai: completion has no text")

// Complete sends one system + user message pair and returns the reply text.
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	if !c.Configured() {
		return "", errors.New("ai: api key not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("ai: read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if res.StatusCode/100 != 2 {
			return "", fmt.Errorf("ai: upstream status %d", res.StatusCode)
		}
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("ai: upstream status %d: %s: %s", res.StatusCode, parsed.Error.Type, parsed.Error.Message)
	}
	if res.StatusCode/100 != 2 {
		return "", fmt.Errorf("ai: upstream status %d", res.StatusCode)
	}

	for _, ch := range parsed.Choices {
		if text := strings.TrimSpace(ch.Message.Content); text != "" {
			return text, nil
		}
	}
	return "", errEmptyCompletion
}
