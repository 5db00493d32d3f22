package scryfall

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func searchPageJSON(hasMore bool, names ...string) string {
	data := ""
	for i, name := range names {
		if i > 0 {
			data += ","
		}
		data += fmt.Sprintf(`{"name":%q,"scryfall_uri":"https://scryfall.com/card/%d"}`, name, i)
	}
	return fmt.Sprintf(`{"object":"list","total_cards":%d,"has_more":%v,"data":[%s]}`, len(names), hasMore, data)
}

func TestSearchAllNamesPaginates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "otag:tutor" {
			t.Errorf("query = %q, want otag:tutor", got)
		}
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprint(w, searchPageJSON(true, "Demonic Tutor", "Vampiric Tutor"))
		case "2":
			fmt.Fprint(w, searchPageJSON(false, "Mystical Tutor"))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	names, err := client.SearchAllNames(context.Background(), "otag:tutor")
	if err != nil {
		t.Fatalf("SearchAllNames: %v", err)
	}

	if len(names) != 3 {
		t.Errorf("names = %v, want 3 entries", names)
	}
	for _, want := range []string{"Demonic Tutor", "Vampiric Tutor", "Mystical Tutor"} {
		if _, ok := names[want]; !ok {
			t.Errorf("names missing %q", want)
		}
	}
}

func TestSearchCardURIs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchPageJSON(false, "Time Warp"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	uris, err := client.SearchCardURIs(context.Background(), "oracletag:extra-turn")
	if err != nil {
		t.Fatalf("SearchCardURIs: %v", err)
	}
	if uris["Time Warp"] == "" {
		t.Errorf("uris = %v, want Time Warp entry", uris)
	}
}

func TestSearchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.SearchAllNames(context.Background(), "otag:nonexistent")
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestSearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"object":"error","code":"bad_request","details":"Invalid search syntax"}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.SearchAllNames(context.Background(), "otag:(")
	if err == nil {
		t.Fatal("expected error for 400")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Details != "Invalid search syntax" {
		t.Errorf("Details = %q", apiErr.Details)
	}
}

func TestSearchPageLimitTruncates(t *testing.T) {
	pages := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		// Every page claims more pages exist.
		fmt.Fprint(w, searchPageJSON(true, fmt.Sprintf("Card %d", pages)))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	names, err := client.SearchAllNames(context.Background(), "otag:endless")
	if err != nil {
		t.Fatalf("hitting the page cap should truncate, not fail: %v", err)
	}
	if pages != maxSearchPages {
		t.Errorf("fetched %d pages, want %d", pages, maxSearchPages)
	}
	// Everything fetched before the cap is kept.
	if len(names) != maxSearchPages {
		t.Errorf("names = %d entries, want %d", len(names), maxSearchPages)
	}
}
