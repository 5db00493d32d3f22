package scryfall

import "fmt"

// Card represents the subset of a Scryfall card object the API consumes.
type Card struct {
	Name        string   `json:"name"`
	ManaCost    string   `json:"mana_cost,omitempty"`
	TypeLine    string   `json:"type_line,omitempty"`
	OracleText  string   `json:"oracle_text,omitempty"`
	ColorID     []string `json:"color_identity,omitempty"`
	Rarity      string   `json:"rarity,omitempty"`
	SetName     string   `json:"set_name,omitempty"`
	SetCode     string   `json:"set,omitempty"`
	CMC         float64  `json:"cmc,omitempty"`
	ScryfallURI string   `json:"scryfall_uri,omitempty"`
}

// SearchResult is one page of a /cards/search response.
type SearchResult struct {
	Object     string `json:"object"`
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
	NextPage   string `json:"next_page,omitempty"`
	Data       []Card `json:"data"`
}

// APIError is the error payload Scryfall returns on non-200 responses.
type APIError struct {
	Object  string `json:"object"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Details string `json:"details"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scryfall API error (HTTP %d): %s", e.Status, e.Details)
}

// NotFoundError indicates a 404 from the API.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scryfall resource not found: %s", e.URL)
}
