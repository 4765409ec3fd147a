package broker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"

	"github.com/jasonwu001t/taicfg/internal/creds"
)

// AlpacaClient wraps the Alpaca trading client.
type AlpacaClient struct {
	api *alpaca.Client
}

// NewAlpaca builds the client. The SDK does not thread contexts, so
// deadlines are enforced through the HTTP client timeout instead.
func NewAlpaca(cfg creds.Alpaca) *AlpacaClient {
	api := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     cfg.APIKey,
		APISecret:  cfg.APISecret,
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	})

	return &AlpacaClient{api: api}
}

// API exposes the SDK client for order and account calls.
func (c *AlpacaClient) API() *alpaca.Client {
	return c.api
}

// Ping fetches the account, the cheapest authenticated endpoint. The
// context is accepted for interface symmetry but only the client timeout
// bounds the call.
func (c *AlpacaClient) Ping(ctx context.Context) error {
	if _, err := c.api.GetAccount(); err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	return nil
}
