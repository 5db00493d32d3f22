package deckhost

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestExtractor(moxfieldBase, archidektBase string) *Extractor {
	e := NewExtractor()
	if moxfieldBase != "" {
		e.moxfieldAPIBase = moxfieldBase
	}
	if archidektBase != "" {
		e.archidektAPIBase = archidektBase
	}
	return e
}

func TestExtractMoxfield(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/abc123" {
			t.Errorf("path = %q, want /abc123", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"commanders": {"Tergrid, God of Fright": {"quantity": 1}},
			"mainboard": {
				"Sol Ring": {"quantity": 1},
				"Swamp": {"quantity": 30}
			}
		}`)
	}))
	defer server.Close()

	e := newTestExtractor(server.URL+"/", "")
	entries, err := e.Extract(context.Background(), "https://moxfield.com/decks/abc123")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []Entry{
		{Name: "Tergrid, God of Fright", Quantity: 1},
		{Name: "Sol Ring", Quantity: 1},
		{Name: "Swamp", Quantity: 30},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestExtractArchidekt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/12345/" {
			t.Errorf("path = %q, want /12345/", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"cards": [
				{"quantity": 1, "category": "Commander", "card": {"oracleCard": {"name": "Urza, Lord High Artificer"}}},
				{"quantity": 1, "category": "Artifact", "card": {"oracleCard": {"name": "Sol Ring"}}},
				{"quantity": 1, "category": "Maybeboard", "card": {"oracleCard": {"name": "Mana Crypt"}}},
				{"quantity": 0, "category": "Land", "card": {"oracleCard": {"name": "Island"}}}
			]
		}`)
	}))
	defer server.Close()

	e := newTestExtractor("", server.URL+"/")
	entries, err := e.Extract(context.Background(), "https://archidekt.com/decks/12345/my-deck")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []Entry{
		{Name: "Urza, Lord High Artificer", Quantity: 1},
		{Name: "Sol Ring", Quantity: 1},
		{Name: "Island", Quantity: 1}, // zero quantity floors to one
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestExtractRejectsUnsupportedURLs(t *testing.T) {
	e := NewExtractor()

	for _, deckURL := range []string{
		"https://tappedout.net/mtg-decks/some-deck/",
		"moxfield.com/decks/abc123",
		"",
	} {
		if _, err := e.Extract(context.Background(), deckURL); err == nil {
			t.Errorf("Extract(%q) should fail", deckURL)
		}
	}
}

func TestDeckID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
		wantErr  bool
	}{
		{"https://moxfield.com/decks/abc123", "abc123", false},
		{"https://archidekt.com/decks/12345/deck-name", "12345", false},
		{"https://moxfield.com/decks/abc123?utm=share", "abc123", false},
		{"https://moxfield.com/decks/abc123#primer", "abc123", false},
		{"https://moxfield.com/decks/", "", true},
		{"https://moxfield.com/users/someone", "", true},
	}

	for _, tt := range tests {
		id, err := deckID(tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("deckID(%q) should fail", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("deckID(%q): %v", tt.url, err)
			continue
		}
		if id != tt.expected {
			t.Errorf("deckID(%q) = %q, want %q", tt.url, id, tt.expected)
		}
	}
}

func TestLines(t *testing.T) {
	entries := []Entry{
		{Name: "Sol Ring", Quantity: 1},
		{Name: "Swamp", Quantity: 30},
		{Name: "Dropped", Quantity: 0},
	}

	want := []string{"Sol Ring", "30 Swamp"}
	if got := Lines(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}
