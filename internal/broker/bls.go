package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jasonwu001t/taicfg/internal/creds"
)

// DefaultBLSBaseURL is the Bureau of Labor Statistics v2 timeseries API.
const DefaultBLSBaseURL = "https://api.bls.gov/publicAPI/v2/timeseries/data/"

// UnemploymentRateSeries is the headline CPS unemployment rate, used as a
// cheap known-good series for connectivity checks.
const UnemploymentRateSeries = "LNS14000000"

// BLSClient calls the BLS public timeseries API. Requests are rate limited
// client-side; BLS enforces daily quotas and throttles bursts.
type BLSClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// BLSOption adjusts client construction.
type BLSOption func(*BLSClient)

// WithBLSBaseURL points the client at a different endpoint, mainly for
// tests against a local server.
func WithBLSBaseURL(baseURL string) BLSOption {
	return func(c *BLSClient) {
		c.baseURL = baseURL
	}
}

func NewBLS(cfg creds.BLS, opts ...BLSOption) *BLSClient {
	c := &BLSClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
		apiKey:     cfg.APIKey,
		baseURL:    DefaultBLSBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SeriesRequest names the series to fetch and an optional year range.
type SeriesRequest struct {
	SeriesIDs []string
	StartYear int
	EndYear   int
}

// SeriesEntry is one observation of one series.
type SeriesEntry struct {
	Year   string `json:"year"`
	Period string `json:"period"`
	Value  string `json:"value"`
}

// SeriesData is all returned observations for one series.
type SeriesData struct {
	SeriesID string        `json:"seriesID"`
	Entries  []SeriesEntry `json:"data"`
}

type blsResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []SeriesData `json:"series"`
	} `json:"Results"`
}

// Series fetches timeseries observations. The call blocks on the client
// rate limiter before issuing the request.
func (c *BLSClient) Series(ctx context.Context, req SeriesRequest) ([]SeriesData, error) {
	if len(req.SeriesIDs) == 0 {
		return nil, fmt.Errorf("no series ids given")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body := map[string]any{"seriesid": req.SeriesIDs}
	if req.StartYear > 0 {
		body["startyear"] = strconv.Itoa(req.StartYear)
		body["endyear"] = strconv.Itoa(req.EndYear)
	}
	if c.apiKey != "" {
		body["registrationkey"] = c.apiKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call bls: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bls returned status %d", res.StatusCode)
	}

	var parsed blsResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if parsed.Status != "REQUEST_SUCCEEDED" {
		return nil, fmt.Errorf("bls request failed: %s", strings.Join(parsed.Message, "; "))
	}

	return parsed.Results.Series, nil
}

// Ping fetches a single well-known series.
func (c *BLSClient) Ping(ctx context.Context) error {
	_, err := c.Series(ctx, SeriesRequest{SeriesIDs: []string{UnemploymentRateSeries}})
	return err
}
