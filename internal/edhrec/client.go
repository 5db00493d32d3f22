// Package edhrec implements the community statistics collaborator. EDHRec
// serves its page data as JSON documents; the salt corpus is a paginated
// chain of documents linked by a "more" pointer.
package edhrec

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	defaultJSONBaseURL = "https://json.edhrec.com/pages/"
	saltEntryPage      = "top/salt.json"
	rateLimitDelay     = 250 * time.Millisecond
	requestTimeout     = 20 * time.Second
)

// Client fetches JSON page data from EDHRec.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// NewClient creates an EDHRec client with default settings.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		baseURL:     defaultJSONBaseURL,
		userAgent:   "EDH-Companion/1.0",
	}
}

// NewClientWithBaseURL creates a client pointed at an alternate endpoint.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	c.baseURL = base
	return c
}

// saltEntryDocument is the first salt page. Later pages flatten to saltPage.
type saltEntryDocument struct {
	Container struct {
		JSONDict struct {
			Cardlists []saltPage `json:"cardlists"`
		} `json:"json_dict"`
	} `json:"container"`
}

type saltPage struct {
	Cardviews []map[string]interface{} `json:"cardviews"`
	More      string                   `json:"more"`
}

// VisitSaltScores walks every page of the salt corpus, invoking visit for
// each card record that yields a valid score. It returns the number of pages
// fetched. Pagination follows the "more" pointer until it is absent.
func (c *Client) VisitSaltScores(ctx context.Context, visit func(name string, score float64)) (int, error) {
	var entry saltEntryDocument
	if err := c.getJSON(ctx, saltEntryPage, &entry); err != nil {
		return 0, fmt.Errorf("fetch salt entry page: %w", err)
	}

	cardlists := entry.Container.JSONDict.Cardlists
	if len(cardlists) == 0 {
		return 0, fmt.Errorf("salt entry page has no cardlists")
	}

	pages := 1
	visitPage(cardlists[0].Cardviews, visit)
	next := cardlists[0].More

	for next != "" {
		var page saltPage
		if err := c.getJSON(ctx, next, &page); err != nil {
			return pages, fmt.Errorf("fetch salt page %d: %w", pages+1, err)
		}

		visitPage(page.Cardviews, visit)
		next = page.More
		pages++

		if pages%50 == 0 {
			log.Printf("edhrec: fetched %d salt pages", pages)
		}
	}

	return pages, nil
}

func visitPage(cards []map[string]interface{}, visit func(name string, score float64)) {
	for _, card := range cards {
		name, _ := card["name"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if score, ok := ExtractSaltScore(card); ok {
			visit(name, score)
		}
	}
}

// CommanderSalt fetches a commander's page and extracts its salt score. The
// slug is the EDHRec URL form of the name (lowercase, hyphenated, no
// punctuation). Returns 0 with no error when the page carries no score.
func (c *Client) CommanderSalt(ctx context.Context, slug string) (float64, error) {
	var doc map[string]interface{}
	if err := c.getJSON(ctx, "commanders/"+slug+".json", &doc); err != nil {
		return 0, fmt.Errorf("fetch commander page %q: %w", slug, err)
	}

	if score, ok := SearchSaltScore(doc); ok {
		return score, nil
	}
	return 0, nil
}

// CommanderSlug converts a card name to EDHRec's URL slug form.
func CommanderSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	// Split cards resolve under their front face.
	if idx := strings.Index(slug, "//"); idx >= 0 {
		slug = strings.TrimSpace(slug[:idx])
	}
	slug = strings.ReplaceAll(slug, "'", "")
	slug = strings.ReplaceAll(slug, ",", "")
	slug = strings.ReplaceAll(slug, ".", "")
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

func (c *Client) getJSON(ctx context.Context, page string, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+page, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, page)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("parse JSON response: %w", err)
	}
	return nil
}
