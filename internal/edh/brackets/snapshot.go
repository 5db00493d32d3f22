package brackets

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/ramonehamilton/EDH-Companion/internal/fetch"
)

// Snapshot is the process-wide classification dataset. Loaded once, replaced
// only whole: readers never see a partially built snapshot.
type Snapshot struct {
	MassLandDenial map[string]bool
	GameChangers   map[string]bool
	ComboPairs     [][2]string
	Tutors         map[string]bool
}

// CardSearcher is the card database dependency (implemented by the scryfall
// client). Only the tutor and extra-turn sets go through it; the remaining
// lists are compiled in.
type CardSearcher interface {
	SearchAllNames(ctx context.Context, query string) (map[string]struct{}, error)
	SearchCardURIs(ctx context.Context, query string) (map[string]string, error)
}

// Loader memoizes the authoritative snapshot and the extra-turn card set for
// the process lifetime. Refresh rebuilds and atomically swaps the snapshot.
type Loader struct {
	searcher CardSearcher

	mu        sync.Mutex
	snapshot  *Snapshot
	extraTurn map[string]string
}

// NewLoader creates a Loader backed by the given card searcher.
func NewLoader(searcher CardSearcher) *Loader {
	return &Loader{searcher: searcher}
}

// Load returns the authoritative snapshot, building it on first use. The
// tutor subset is fetched live from the card database and falls back to a
// compiled-in list; either way the result is cached identically.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.snapshot != nil {
		return l.snapshot
	}

	l.snapshot = l.build(ctx)
	return l.snapshot
}

// Refresh discards the cached snapshot and rebuilds it.
func (l *Loader) Refresh(ctx context.Context) *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snapshot = l.build(ctx)
	return l.snapshot
}

func (l *Loader) build(ctx context.Context) *Snapshot {
	tutorFetch := &fetch.Fallback[map[string]bool]{
		Name: "tutor cards",
		Primary: func(ctx context.Context) (map[string]bool, error) {
			if l.searcher == nil {
				return nil, fmt.Errorf("no card searcher configured")
			}
			names, err := l.searcher.SearchAllNames(ctx, "otag:tutor")
			if err != nil {
				return nil, err
			}
			tutors := make(map[string]bool, len(names))
			for name := range names {
				tutors[name] = true
			}
			return tutors, nil
		},
		Secondary: func() map[string]bool {
			return nameSetFromSlice(tutorFallbackList)
		},
	}

	tutors, live := tutorFetch.Fetch(ctx)
	if live {
		log.Printf("brackets: loaded %d tutor cards from card database", len(tutors))
	}

	return &Snapshot{
		MassLandDenial: nameSetFromSlice(massLandDenialList),
		GameChangers:   nameSetFromSlice(gameChangerList),
		ComboPairs:     comboPairList,
		Tutors:         tutors,
	}
}

// ExtraTurnCards returns the extra-turn card set (name to card page URL),
// fetched from the card database's oracle tag and cached for the process.
// On fetch failure a compiled-in list is cached instead, with search URLs
// constructed per card.
func (l *Loader) ExtraTurnCards(ctx context.Context) map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.extraTurn != nil {
		return l.extraTurn
	}

	extraTurnFetch := &fetch.Fallback[map[string]string]{
		Name: "extra turn cards",
		Primary: func(ctx context.Context) (map[string]string, error) {
			if l.searcher == nil {
				return nil, fmt.Errorf("no card searcher configured")
			}
			return l.searcher.SearchCardURIs(ctx, "oracletag:extra-turn")
		},
		Secondary: func() map[string]string {
			cards := make(map[string]string, len(extraTurnFallbackList))
			for _, name := range extraTurnFallbackList {
				query := url.QueryEscape(fmt.Sprintf("name:%q", name))
				cards[name] = "https://scryfall.com/search?q=" + query
			}
			return cards
		},
	}

	cards, live := extraTurnFetch.Fetch(ctx)
	if live {
		log.Printf("brackets: loaded %d extra turn cards from card database", len(cards))
	}

	l.extraTurn = cards
	return l.extraTurn
}

// DetectCombos returns the combo pairs for which both pieces are present.
func DetectCombos(cards []Card, pairs [][2]string) [][2]string {
	present := make(map[string]bool, len(cards))
	for _, card := range cards {
		present[card.Name] = true
	}

	var detected [][2]string
	for _, pair := range pairs {
		if present[pair[0]] && present[pair[1]] {
			detected = append(detected, pair)
		}
	}
	return detected
}

// FormatCombos renders detected pairs as "A + B" strings.
func FormatCombos(pairs [][2]string) []string {
	out := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, strings.Join([]string{pair[0], pair[1]}, " + "))
	}
	return out
}
