// Package scryfall implements the card database collaborator. It wraps the
// Scryfall search API with rate limiting and bounded pagination so tag-based
// queries (otag:tutor, oracletag:extra-turn) stay inside the request budget.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.scryfall.com"
	rateLimitDelay = 100 * time.Millisecond // Scryfall asks for 50-100ms between requests
	requestTimeout = 20 * time.Second
	maxRetries     = 2
	initialBackoff = 1 * time.Second
	maxBackoff     = 8 * time.Second

	// maxSearchPages caps paginated searches. The tutor tag resolves to
	// roughly 1200 cards at ~175 per page, so 20 pages is generous headroom.
	maxSearchPages = 20
)

// Client is a rate-limited Scryfall API client.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// NewClient creates a Scryfall client with default settings.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		baseURL:     defaultBaseURL,
		userAgent:   "EDH-Companion/1.0",
	}
}

// NewClientWithBaseURL creates a client pointed at an alternate endpoint.
// Used by tests to target an httptest server.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// SearchPage fetches a single page of search results for the given query.
func (c *Client) SearchPage(ctx context.Context, query string, page int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("unique", "cards")
	params.Set("order", "name")
	params.Set("format", "json")
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}

	endpoint := fmt.Sprintf("%s/cards/search?%s", c.baseURL, params.Encode())

	var result SearchResult
	if err := c.doRequest(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("search %q page %d: %w", query, page, err)
	}
	return &result, nil
}

// SearchAllNames pages through a search query and returns the full set of
// card names. Pagination is capped at maxSearchPages to avoid unbounded
// loops if the API keeps reporting more pages; hitting the cap truncates
// the result rather than failing it.
func (c *Client) SearchAllNames(ctx context.Context, query string) (map[string]struct{}, error) {
	names := make(map[string]struct{})

	for page := 1; ; page++ {
		result, err := c.SearchPage(ctx, query, page)
		if err != nil {
			return nil, err
		}

		for _, card := range result.Data {
			if card.Name != "" {
				names[card.Name] = struct{}{}
			}
		}

		if !result.HasMore {
			break
		}
		if page >= maxSearchPages {
			log.Printf("scryfall: search %q truncated at %d pages (%d names)", query, maxSearchPages, len(names))
			break
		}
	}

	return names, nil
}

// SearchCardURIs pages through a search query and maps card names to their
// Scryfall page URIs. Same pagination cap as SearchAllNames.
func (c *Client) SearchCardURIs(ctx context.Context, query string) (map[string]string, error) {
	uris := make(map[string]string)

	for page := 1; ; page++ {
		result, err := c.SearchPage(ctx, query, page)
		if err != nil {
			return nil, err
		}

		for _, card := range result.Data {
			if card.Name != "" && card.ScryfallURI != "" {
				uris[card.Name] = card.ScryfallURI
			}
		}

		if !result.HasMore {
			break
		}
		if page >= maxSearchPages {
			log.Printf("scryfall: search %q truncated at %d pages (%d cards)", query, maxSearchPages, len(uris))
			break
		}
	}

	return uris, nil
}

// doRequest performs a GET with rate limiting and retry on transient failures.
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			if attempt < maxRetries {
				time.Sleep(backoff)
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			if readErr != nil {
				return fmt.Errorf("read response body: %w", readErr)
			}
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("parse JSON response: %w", err)
			}
			return nil

		case http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited (HTTP 429)")
			if attempt < maxRetries {
				time.Sleep(backoff)
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr

		case http.StatusNotFound:
			return &NotFoundError{URL: endpoint}

		default:
			var apiErr APIError
			if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Details != "" {
				apiErr.Status = resp.StatusCode
				return &apiErr
			}
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
	}

	return lastErr
}
