package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheTTL is how long a fetched craft list stays fresh. The source
// recomputes prices on a similar cadence, so refetching sooner only
// burns quota.
const cacheTTL = 5 * time.Minute

// Client talks to the external pricing source.
type Client struct {
	http *http.Client
	url  string

	mu      sync.Mutex
	cached  []CraftListing
	fetched time.Time
	group   singleflight.Group
}

// NewClient creates a pricing client. The timeout bounds every request;
// a refresh that exceeds it fails without partial effect.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		url:  url,
	}
}

// HealthCheck verifies the pricing source answers at all.
func (c *Client) HealthCheck(ctx context.Context) bool {
	_, err := c.query(ctx, `{ __typename }`)
	return err == nil
}

// FetchCrafts returns every craft listing from the pricing source.
// Results are cached for a short TTL and concurrent calls for the same
// fetch are coalesced.
func (c *Client) FetchCrafts(ctx context.Context) ([]CraftListing, error) {
	c.mu.Lock()
	if c.cached != nil && time.Since(c.fetched) < cacheTTL {
		cached := c.cached
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	result, err, _ := c.group.Do("crafts", func() (interface{}, error) {
		listings, err := c.fetchCrafts(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cached = listings
		c.fetched = time.Now()
		c.mu.Unlock()
		return listings, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]CraftListing), nil
}

func (c *Client) fetchCrafts(ctx context.Context) ([]CraftListing, error) {
	raw, err := c.query(ctx, craftsQuery)
	if err != nil {
		return nil, err
	}

	var data struct {
		Crafts []CraftListing `json:"crafts"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode crafts: %w", err)
	}
	return data.Crafts, nil
}

// query posts a GraphQL query and returns the raw data payload.
func (c *Client) query(ctx context.Context, q string) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]string{"query": q})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hideout-tracker/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("market API %d: %s", resp.StatusCode, string(snippet))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("market API error: %s", envelope.Errors[0].Message)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("market API returned no data")
	}
	return envelope.Data, nil
}
