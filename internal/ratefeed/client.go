package ratefeed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// requestTimeout bounds a single upstream request so a hung response
// cannot stall the polling job.
const requestTimeout = 30 * time.Second

// ratesResponse is the upstream payload: every tracked currency quoted
// against the requested reference currency.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Client fetches exchange rate snapshots from the third-party feed.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a feed client. rps caps outgoing requests per
// second; the free tier of the feed throttles aggressively.
func NewClient(baseURL string, rps float64) *Client {
	return &Client{
		http:    resty.New().SetBaseURL(baseURL).SetTimeout(requestTimeout),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// FetchRates retrieves one snapshot of all rates quoted against base.
func (c *Client) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ratesResponse{}).
		Get("/" + base)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", base, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("rate feed returned status %d for %s", resp.StatusCode(), base)
	}

	result, ok := resp.Result().(*ratesResponse)
	if !ok || len(result.Rates) == 0 {
		return nil, fmt.Errorf("rate feed returned an empty snapshot for %s", base)
	}
	return result.Rates, nil
}
