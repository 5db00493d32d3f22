// Package deckhost extracts decklists from supported deck-hosting platforms
// (Moxfield, Archidekt) given a public deck URL.
package deckhost

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 20 * time.Second

// Entry is one card entry extracted from a hosted deck.
type Entry struct {
	Name     string
	Quantity int
}

// Extractor resolves deck URLs into ordered card entries.
type Extractor struct {
	httpClient *http.Client
	userAgent  string

	// Overridable endpoints for tests.
	moxfieldAPIBase  string
	archidektAPIBase string
}

// NewExtractor creates an extractor with default platform endpoints.
func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent:        "Mozilla/5.0 (compatible; EDH-Companion/1.0)",
		moxfieldAPIBase:  "https://api2.moxfield.com/v2/decks/all/",
		archidektAPIBase: "https://archidekt.com/api/decks/",
	}
}

// Extract fetches the decklist behind a supported platform URL. The returned
// entries preserve the platform's card order.
func (e *Extractor) Extract(ctx context.Context, deckURL string) ([]Entry, error) {
	deckURL = strings.TrimSpace(deckURL)
	if !strings.HasPrefix(deckURL, "http://") && !strings.HasPrefix(deckURL, "https://") {
		return nil, fmt.Errorf("deck URL must start with http:// or https://")
	}

	lower := strings.ToLower(deckURL)
	switch {
	case strings.Contains(lower, "moxfield.com/decks/"):
		return e.extractMoxfield(ctx, deckURL)
	case strings.Contains(lower, "archidekt.com/decks/"):
		return e.extractArchidekt(ctx, deckURL)
	default:
		return nil, fmt.Errorf("deck URL must be from a supported platform: moxfield.com, archidekt.com")
	}
}

// Lines renders entries in decklist text form ("Name" or "N Name").
func Lines(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Quantity <= 0 {
			continue
		}
		if entry.Quantity == 1 {
			lines = append(lines, entry.Name)
		} else {
			lines = append(lines, fmt.Sprintf("%d %s", entry.Quantity, entry.Name))
		}
	}
	return lines
}

// deckID pulls the path segment following "/decks/" out of a platform URL.
func deckID(deckURL string) (string, error) {
	idx := strings.Index(strings.ToLower(deckURL), "/decks/")
	if idx < 0 {
		return "", fmt.Errorf("no deck ID in URL")
	}

	id := deckURL[idx+len("/decks/"):]
	for _, sep := range []string{"/", "?", "#"} {
		if cut := strings.Index(id, sep); cut >= 0 {
			id = id[:cut]
		}
	}
	if id == "" {
		return "", fmt.Errorf("no deck ID in URL")
	}
	return id, nil
}
