// Package salt manages the EDHRec salt score cache: the full community score
// table fetched page by page, persisted as one JSON snapshot, and queried for
// single cards, whole decks, and commanders. The cache never expires; only a
// manual refresh replaces it.
package salt

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ramonehamilton/EDH-Companion/internal/edh/decklist"
	"github.com/ramonehamilton/EDH-Companion/internal/edhrec"
)

// tier is one band of the deck salt scale. Lower bound inclusive, upper
// exclusive.
type tier struct {
	Name string
	Min  float64
	Max  float64
}

var saltTiers = []tier{
	{"Casual", 0.0, 1.0},
	{"Slightly Salty", 1.0, 1.5},
	{"Moderately Salty", 1.5, 2.0},
	{"Very Salty", 2.0, 2.5},
	{"Extremely Salty", 2.5, 3.0},
	{"Toxic", 3.0, math.Inf(1)},
}

// commanderSaltFallbacks covers well-known commanders when neither the cache
// nor a live lookup yields a score. Keys are slug form.
var commanderSaltFallbacks = map[string]float64{
	"tergrid-god-of-fright":     2.8,
	"yuriko-the-tigers-shadow":  2.15,
	"vorinclex-voice-of-hunger": 2.61,
	"kinnan-bonder-prodigy":     2.15,
	"jin-gitaxias-core-augur":   2.57,
	"edgar-markov":              2.05,
	"sheoldred-the-apocalypse":  2.03,
	"atraxa-praetors-voice":     1.72,
	"urza-lord-high-artificer":  2.31,
	"winota-joiner-of-forces":   1.95,
	"slicer-hired-muscle":       0.96,
}

const defaultCommanderSalt = 1.0

// SaltSource is the EDHRec dependency, implemented by *edhrec.Client.
type SaltSource interface {
	VisitSaltScores(ctx context.Context, visit func(name string, score float64)) (int, error)
	CommanderSalt(ctx context.Context, slug string) (float64, error)
}

// Service is the salt score cache. Lookups read the in-memory table; Refresh
// rebuilds it from EDHRec and persists the snapshot.
type Service struct {
	source    SaltSource
	cacheFile string

	mu     sync.RWMutex
	data   map[string]float64 // lowercase card name -> salt score
	loaded bool
}

// RefreshResult reports the outcome of a cache refresh.
type RefreshResult struct {
	Success      bool   `json:"success"`
	CardCount    int    `json:"card_count"`
	CachedAt     string `json:"cached_at,omitempty"`
	PagesFetched int    `json:"pages_fetched,omitempty"`
	Error        string `json:"error,omitempty"`
}

// CacheInfo describes the current cache state.
type CacheInfo struct {
	CachedAt  string `json:"cached_at,omitempty"`
	CardCount int    `json:"card_count"`
	CacheFile string `json:"cache_file"`
	IsLoaded  bool   `json:"is_loaded"`
}

// CardSalt is one card's score within a deck analysis.
type CardSalt struct {
	Name string  `json:"name"`
	Salt float64 `json:"salt"`
}

// DeckSalt is the full salt analysis of a deck.
type DeckSalt struct {
	TotalSalt      float64    `json:"total_salt"`
	AverageSalt    float64    `json:"average_salt"`
	SaltTier       string     `json:"salt_tier"`
	CardCount      int        `json:"card_count"`
	SaltyCardCount int        `json:"salty_card_count"`
	TopOffenders   []CardSalt `json:"top_offenders"`
	AllSaltyCards  []CardSalt `json:"all_salty_cards"`
	UnknownCards   []string   `json:"unknown_cards"`
	CacheHitRatio  float64    `json:"cache_hit_ratio"`
}

// NewService creates the salt cache, loading an existing snapshot from disk
// if one is present.
func NewService(source SaltSource, cacheFile string) *Service {
	s := &Service{
		source:    source,
		cacheFile: cacheFile,
		data:      map[string]float64{},
	}
	s.loadFromDisk()
	return s
}

func (s *Service) loadFromDisk() {
	snap, err := readSnapshot(s.cacheFile)
	if err != nil {
		log.Printf("salt: no usable cache file, will fetch on first use: %v", err)
		return
	}

	if snap.Cards != nil {
		s.data = snap.Cards
	}
	s.loaded = true
	log.Printf("salt: loaded %d salt scores from cache (cached: %s)", len(s.data), snap.CachedAt)
}

// EnsureLoaded fetches the score table when the cache is empty. A populated
// cache is left untouched.
func (s *Service) EnsureLoaded(ctx context.Context) {
	s.mu.RLock()
	ready := s.loaded && len(s.data) > 0
	s.mu.RUnlock()

	if !ready {
		log.Printf("salt: cache not loaded, fetching from EDHRec")
		s.Refresh(ctx)
	}
}

// Refresh fetches the full salt corpus from EDHRec, swaps the table in whole,
// and persists the snapshot. Readers never see a partially built table: the
// swap happens once, after the walk. On failure the entries accumulated
// before the error become the table and the result reports the failure.
func (s *Service) Refresh(ctx context.Context) RefreshResult {
	log.Printf("salt: refreshing cache from EDHRec")

	fresh := map[string]float64{}
	pages, err := s.source.VisitSaltScores(ctx, func(name string, score float64) {
		fresh[strings.ToLower(name)] = score
	})
	if err != nil {
		log.Printf("salt: refresh failed: %v", err)
		s.mu.Lock()
		s.data = fresh
		s.loaded = false
		s.mu.Unlock()
		return RefreshResult{
			Success:   false,
			CardCount: len(fresh),
			Error:     err.Error(),
		}
	}

	cachedAt := time.Now().Format(time.RFC3339)
	snap := &snapshot{
		CachedAt:  cachedAt,
		CardCount: len(fresh),
		Cards:     fresh,
	}
	if err := writeSnapshot(s.cacheFile, snap); err != nil {
		log.Printf("salt: persist snapshot: %v", err)
	}

	s.mu.Lock()
	s.data = fresh
	s.loaded = true
	s.mu.Unlock()

	log.Printf("salt: cache refreshed, %d cards saved to %s", len(fresh), s.cacheFile)
	return RefreshResult{
		Success:      true,
		CardCount:    len(fresh),
		CachedAt:     cachedAt,
		PagesFetched: pages,
	}
}

// GetCardSalt returns a card's salt score, 0.0 when unknown.
func (s *Service) GetCardSalt(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[strings.ToLower(strings.TrimSpace(name))]
}

// GetCardSaltWithVariants tries a fixed ordered set of name variants before
// giving up. Deck-hosting platforms format names inconsistently against the
// statistics source (spacing, hyphens, commas), so a miss on the plain name
// retries the rewritten forms.
func (s *Service) GetCardSaltWithVariants(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, variant := range cardNameVariants(name) {
		if score, ok := s.data[variant]; ok {
			return score
		}
	}
	return 0.0
}

// cardNameVariants is the variant table for cache lookups: the normalized
// name first, then the no-space, hyphenated, and comma-less rewrites and
// their combinations, deduplicated in order.
func cardNameVariants(name string) []string {
	base := strings.ToLower(strings.TrimSpace(name))
	noCommas := strings.ReplaceAll(base, ",", "")

	candidates := []string{
		base,
		strings.ReplaceAll(base, " ", ""),
		strings.ReplaceAll(base, " ", "-"),
		noCommas,
		strings.ReplaceAll(noCommas, " ", ""),
		strings.ReplaceAll(noCommas, " ", "-"),
	}

	seen := make(map[string]bool, len(candidates))
	variants := candidates[:0]
	for _, variant := range candidates {
		if variant == "" || seen[variant] {
			continue
		}
		seen[variant] = true
		variants = append(variants, variant)
	}
	return variants
}

// AllScores returns a copy of the score table. Keys are lowercase.
func (s *Service) AllScores() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scores := make(map[string]float64, len(s.data))
	for name, score := range s.data {
		scores[name] = score
	}
	return scores
}

// SaltTier maps an average deck salt score to its tier name.
func SaltTier(averageSalt float64) string {
	for _, t := range saltTiers {
		if averageSalt >= t.Min && averageSalt < t.Max {
			return t.Name
		}
	}
	return "Unknown"
}

// LevelDescription labels a single salt score. Finer-grained than the deck
// tiers, with a "Mildly Salty" band between casual and slightly salty.
func LevelDescription(score float64) string {
	switch {
	case score >= 3.0:
		return "Extremely Salty"
	case score >= 2.5:
		return "Very Salty"
	case score >= 2.0:
		return "Moderately Salty"
	case score >= 1.5:
		return "Slightly Salty"
	case score >= 1.0:
		return "Mildly Salty"
	default:
		return "Casual"
	}
}

// CalculateDeckSalt analyzes a list of card names. Quantities are expressed
// by repeating names in the input; the average divides by the full input
// length, unknown cards included.
func (s *Service) CalculateDeckSalt(cardNames []string) DeckSalt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	var saltyCards []CardSalt
	unknown := []string{}

	for _, name := range cardNames {
		normalized := strings.ToLower(strings.TrimSpace(name))
		score, ok := s.data[normalized]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if score > 0 {
			saltyCards = append(saltyCards, CardSalt{Name: name, Salt: round2(score)})
			total += score
		}
	}

	sort.SliceStable(saltyCards, func(i, j int) bool {
		return saltyCards[i].Salt > saltyCards[j].Salt
	})

	cardCount := len(cardNames)
	average := 0.0
	if cardCount > 0 {
		average = round2(total / float64(cardCount))
	}

	topOffenders := saltyCards
	if len(topOffenders) > 10 {
		topOffenders = topOffenders[:10]
	}

	hitRatio := 0.0
	if cardCount > 0 {
		hitRatio = round2(float64(cardCount-len(unknown)) / float64(cardCount))
	}

	return DeckSalt{
		TotalSalt:      round2(total),
		AverageSalt:    average,
		SaltTier:       SaltTier(average),
		CardCount:      cardCount,
		SaltyCardCount: len(saltyCards),
		TopOffenders:   topOffenders,
		AllSaltyCards:  saltyCards,
		UnknownCards:   unknown,
		CacheHitRatio:  hitRatio,
	}
}

// Info reports the cache's current state, preferring the on-disk snapshot
// metadata when available.
func (s *Service) Info() CacheInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if snap, err := readSnapshot(s.cacheFile); err == nil {
		count := snap.CardCount
		if count == 0 {
			count = len(s.data)
		}
		return CacheInfo{
			CachedAt:  snap.CachedAt,
			CardCount: count,
			CacheFile: s.cacheFile,
			IsLoaded:  s.loaded,
		}
	}

	return CacheInfo{
		CardCount: 0,
		CacheFile: s.cacheFile,
		IsLoaded:  false,
	}
}

// CommanderSalt resolves a commander's salt score through a lookup chain:
// exact cache hits on name variants, punctuation-insensitive matches, fuzzy
// substring matches, a live commander page fetch, and finally a small
// fallback table with a neutral default.
func (s *Service) CommanderSalt(ctx context.Context, commander string) float64 {
	if commander == "" {
		return 0.0
	}

	s.EnsureLoaded(ctx)

	candidates := commanderLookupNames(commander)
	normalizedCandidates := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		normalizedCandidates = append(normalizedCandidates, foldCommanderName(candidate))
	}

	for _, candidate := range candidates {
		if score := s.GetCardSalt(candidate); score > 0 {
			return round2(score)
		}
	}

	scores := s.AllScores()

	for _, name := range normalizedCandidates {
		for cached, score := range scores {
			if foldCommanderName(cached) == name {
				return round2(score)
			}
		}
	}

	for _, name := range normalizedCandidates {
		for cached, score := range scores {
			if score > 0 && strings.Contains(strings.ToLower(cached), name) {
				return round2(score)
			}
		}
	}

	if s.source != nil {
		slug := edhrec.CommanderSlug(commander)
		score, err := s.source.CommanderSalt(ctx, slug)
		if err != nil {
			log.Printf("salt: live commander lookup failed for %q: %v", commander, err)
		} else if score > 0 {
			return round2(score)
		}
	}

	slug := strings.ReplaceAll(strings.ToLower(commander), " ", "-")
	if score, ok := commanderSaltFallbacks[slug]; ok {
		return score
	}
	return defaultCommanderSalt
}

// commanderLookupNames produces cache lookup variants for a commander name:
// the normalized name, the front face of split cards, the name without a
// trailing parenthetical, and a comma-less form.
func commanderLookupNames(commander string) []string {
	if commander == "" {
		return nil
	}

	normalized := decklist.NormalizeName(commander)
	normalized = strings.ReplaceAll(normalized, "’", "'")
	normalized = strings.ReplaceAll(normalized, "`", "'")
	normalized = strings.Join(strings.Fields(normalized), " ")

	var candidates []string
	add := func(value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		for _, existing := range candidates {
			if existing == value {
				return
			}
		}
		candidates = append(candidates, value)
	}

	add(normalized)

	if idx := strings.Index(normalized, "//"); idx >= 0 {
		add(normalized[:idx])
	}

	if strings.HasSuffix(normalized, ")") {
		if open := strings.LastIndex(normalized, "("); open >= 0 {
			add(normalized[:open])
		}
	}

	if strings.Contains(normalized, ",") {
		add(strings.ReplaceAll(normalized, ",", ""))
	}

	return candidates
}

// foldCommanderName lowers case and drops commas and curly apostrophes so
// variants with and without punctuation compare equal.
func foldCommanderName(name string) string {
	folded := strings.ToLower(name)
	folded = strings.ReplaceAll(folded, ",", "")
	folded = strings.ReplaceAll(folded, "’", "'")
	return folded
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
