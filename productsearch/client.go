// Package productsearch resolves real product matches for generated gift
// ideas. With credentials configured it calls the product-search HTTP API;
// without them it serves a deterministic offline catalog so local and test
// environments never crash on a missing integration.
package productsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"giftwise/httpclient"
)

// Product is one candidate returned by the provider.
type Product struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	PriceDisplay string `json:"price_display"`
	DetailURL    string `json:"detail_url"`
}

// HTTPError carries a non-2xx provider response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("product-search: status=%d body=%s", e.StatusCode, e.Body)
}

var ErrNoMatch = errors.New("product-search: no match")

// Client calls the product-search provider.
type Client struct {
	base    *httpclient.BaseClient
	apiKey  string
	offline bool
}

// New builds a client from PRODUCT_SEARCH_BASE_URL and
// PRODUCT_SEARCH_API_KEY. Missing either switches the client to offline
// mode.
func New() *Client {
	baseURL := os.Getenv("PRODUCT_SEARCH_BASE_URL")
	apiKey := os.Getenv("PRODUCT_SEARCH_API_KEY")
	if baseURL == "" || apiKey == "" {
		return &Client{offline: true}
	}
	return &Client{
		base:   httpclient.NewBaseClient(baseURL),
		apiKey: apiKey,
	}
}

// Offline reports whether the client serves the deterministic catalog.
func (c *Client) Offline() bool { return c.offline }

// FindBest returns the best product match for a free-text query, optionally
// filtered by a min/max price in minor currency units. A nil product with a
// nil error means the provider had no candidates.
func (c *Client) FindBest(ctx context.Context, query string, minCents, maxCents *int64) (*Product, error) {
	if query == "" {
		return nil, nil
	}
	if c.offline {
		return offlineMatch(query, minCents, maxCents), nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", "1")
	if minCents != nil {
		q.Set("min_price", strconv.FormatInt(*minCents, 10))
	}
	if maxCents != nil {
		q.Set("max_price", strconv.FormatInt(*maxCents, 10))
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/v1/products/search", q, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: httpclient.DrainBody(resp.Body)}
	}

	var out struct {
		Products []Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Products) == 0 {
		return nil, nil
	}
	return &out.Products[0], nil
}
