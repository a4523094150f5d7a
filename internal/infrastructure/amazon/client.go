// Package amazon implements the client for the Real-Time Amazon Data API.
package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Darlene250/amazon-explorer/internal/domain"
)

// Client handles communication with the Amazon product search API. Every
// call is a single attempt: no retries, no rate limiting.
type Client struct {
	httpClient *http.Client
	searchURL  string
	detailsURL string
	apiHost    string
	debug      bool
}

// NewClient creates a new Amazon API client.
func NewClient(searchURL, detailsURL, apiHost string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		searchURL:  searchURL,
		detailsURL: detailsURL,
		apiHost:    apiHost,
	}
}

// SetDebug enables verbose request/response logging.
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// doRequest executes an HTTP GET request carrying the API credentials.
func (c *Client) doRequest(ctx context.Context, reqURL, apiKey string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAmazonAPIFailure, err)
	}

	return resp, nil
}

// Search queries the search endpoint and returns the product list. It
// succeeds iff the response body has status "OK" and a non-null product
// list; an application-level failure is returned as a *domain.APIError
// carrying the server message when one was supplied.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery, apiKey string) ([]domain.Product, error) {
	params := url.Values{}
	params.Add("query", query.Query)
	params.Add("page", "1")
	params.Add("country", query.Country)
	params.Add("sort_by", query.SortBy)
	params.Add("product_condition", "ALL")
	if query.MinPrice != "" {
		params.Add("min_price", query.MinPrice)
	}
	if query.MaxPrice != "" {
		params.Add("max_price", query.MaxPrice)
	}

	reqURL := fmt.Sprintf("%s?%s", c.searchURL, params.Encode())
	if c.debug {
		log.Printf("[AMAZON] Search request: %s", reqURL)
	}

	resp, err := c.doRequest(ctx, reqURL, apiKey)
	if err != nil {
		log.Printf("[AMAZON] Search request error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAmazonAPIFailure, err)
	}

	var searchResp domain.SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[AMAZON] Search JSON decode error: %v", err)
		return nil, fmt.Errorf("%w: malformed response", domain.ErrAmazonAPIFailure)
	}

	if searchResp.Status != "OK" || searchResp.Data == nil || searchResp.Data.Products == nil {
		log.Printf("[AMAZON] Search failed - status: %q, message: %q", searchResp.Status, searchResp.Message)
		return nil, &domain.APIError{Message: searchResp.Message}
	}

	if c.debug {
		log.Printf("[AMAZON] Found %d products for query: %q", len(searchResp.Data.Products), query.Query)
	}
	return searchResp.Data.Products, nil
}

// GetDetails fetches the full record for one ASIN. It succeeds iff the
// response contains a data object.
func (c *Client) GetDetails(ctx context.Context, asin, country, apiKey string) (domain.ProductDetail, error) {
	params := url.Values{}
	params.Add("asin", asin)
	params.Add("country", country)

	reqURL := fmt.Sprintf("%s?%s", c.detailsURL, params.Encode())
	if c.debug {
		log.Printf("[AMAZON] Details request: %s", reqURL)
	}

	resp, err := c.doRequest(ctx, reqURL, apiKey)
	if err != nil {
		log.Printf("[AMAZON] Details request error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	var detailsResp domain.DetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&detailsResp); err != nil {
		log.Printf("[AMAZON] Details JSON decode error: %v", err)
		return nil, fmt.Errorf("%w: malformed response", domain.ErrAmazonAPIFailure)
	}

	if len(detailsResp.Data) == 0 {
		return nil, domain.ErrDetailsNotFound
	}

	return detailsResp.Data, nil
}
