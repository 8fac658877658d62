package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"placement-match/internal/infrastructure/embedding"

	"google.golang.org/genai"
)

const defaultModel = "text-embedding-004"

// Client implements the embedding provider contract against the Gemini API.
// All version- and backend-specific handling stays inside this adapter.
type Client struct {
	client    *genai.Client
	modelName string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{client: client, modelName: model}, nil
}

func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	if c == nil || c.client == nil {
		return nil, &embedding.ProviderError{Err: errors.New("gemini client is not initialized")}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &embedding.ProviderError{Err: errors.New("text must not be empty")}
	}

	resp, err := c.client.Models.EmbedContent(ctx, c.modelName, genai.Text(text), nil)
	if err != nil {
		return nil, &embedding.ProviderError{Err: fmt.Errorf("embed content: %w", err)}
	}
	if len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, &embedding.ProviderError{Err: errors.New("gemini api returned empty embedding")}
	}

	values := resp.Embeddings[0].Values
	vec := make([]float64, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return vec, nil
}

func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}
