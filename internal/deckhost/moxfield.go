package deckhost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
)

// moxfieldDeck is the subset of the Moxfield deck API response we consume.
// Boards are keyed by card name.
type moxfieldDeck struct {
	Commanders map[string]moxfieldBoardCard `json:"commanders"`
	Mainboard  map[string]moxfieldBoardCard `json:"mainboard"`
}

type moxfieldBoardCard struct {
	Quantity int `json:"quantity"`
}

func (e *Extractor) extractMoxfield(ctx context.Context, deckURL string) ([]Entry, error) {
	id, err := deckID(deckURL)
	if err != nil {
		return nil, fmt.Errorf("moxfield URL: %w", err)
	}

	var deck moxfieldDeck
	if err := e.getJSON(ctx, e.moxfieldAPIBase+id, &deck); err != nil {
		return nil, fmt.Errorf("fetch moxfield deck: %w", err)
	}

	entries := boardEntries(deck.Commanders)
	entries = append(entries, boardEntries(deck.Mainboard)...)

	if len(entries) == 0 {
		return nil, fmt.Errorf("no cards found in the Moxfield deck")
	}

	log.Printf("deckhost: extracted %d entries from Moxfield deck %s", len(entries), id)
	return entries, nil
}

// boardEntries flattens a name-keyed board into sorted entries. Moxfield
// boards are JSON objects, so sorting keeps output deterministic.
func boardEntries(board map[string]moxfieldBoardCard) []Entry {
	names := make([]string, 0, len(board))
	for name := range board {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		quantity := board[name].Quantity
		if quantity <= 0 {
			quantity = 1
		}
		entries = append(entries, Entry{Name: name, Quantity: quantity})
	}
	return entries
}

func (e *Extractor) getJSON(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
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
