package broker

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/jasonwu001t/taicfg/internal/creds"
)

// OpenAIClient wraps the go-openai client.
type OpenAIClient struct {
	api *openai.Client
}

// NewOpenAI builds the client, honoring an optional base URL override for
// proxies and OpenAI-compatible endpoints.
func NewOpenAI(cfg creds.OpenAI) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{api: openai.NewClientWithConfig(clientCfg)}
}

// API exposes the SDK client for completion calls.
func (c *OpenAIClient) API() *openai.Client {
	return c.api
}

// Ping lists models, which authenticates without consuming tokens.
func (c *OpenAIClient) Ping(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}
