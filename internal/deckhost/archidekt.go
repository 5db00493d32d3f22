package deckhost

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// archidektDeck is the subset of the Archidekt deck API response we consume.
type archidektDeck struct {
	Cards []archidektCard `json:"cards"`
}

type archidektCard struct {
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Card     struct {
		OracleCard struct {
			Name string `json:"name"`
		} `json:"oracleCard"`
	} `json:"card"`
}

func (e *Extractor) extractArchidekt(ctx context.Context, deckURL string) ([]Entry, error) {
	id, err := deckID(deckURL)
	if err != nil {
		return nil, fmt.Errorf("archidekt URL: %w", err)
	}

	var deck archidektDeck
	if err := e.getJSON(ctx, e.archidektAPIBase+id+"/", &deck); err != nil {
		return nil, fmt.Errorf("fetch archidekt deck: %w", err)
	}

	entries := make([]Entry, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		name := strings.TrimSpace(card.Card.OracleCard.Name)
		if name == "" {
			continue
		}
		// Maybeboard and sideboard categories are not part of the deck.
		if cat := strings.ToLower(card.Category); cat == "maybeboard" || cat == "sideboard" {
			continue
		}
		quantity := card.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		entries = append(entries, Entry{Name: name, Quantity: quantity})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no cards found in the Archidekt deck")
	}

	log.Printf("deckhost: extracted %d entries from Archidekt deck %s", len(entries), id)
	return entries, nil
}
