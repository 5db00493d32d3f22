package validator

import (
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	cacheTTL        = time.Hour
	cacheMaxEntries = 1000
)

// Signature derives a stable cache key from a request's deck inputs and
// options. The option flags are folded in at their effective values so a
// request that skips a section never serves one that includes it.
func Signature(req *Request) string {
	var parts []string
	parts = append(parts, req.Decklist...)
	if req.DecklistText != "" {
		parts = append(parts, req.DecklistText)
	}
	parts = append(parts, req.DecklistChunks...)
	if req.DecklistURL != "" {
		parts = append(parts, req.DecklistURL)
	}
	parts = append(parts, req.Commander, req.TargetBracket,
		strconv.FormatBool(req.validateBracket()),
		strconv.FormatBool(req.validateLegality()))

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(parts, "||")))
	return strconv.FormatUint(h.Sum64(), 16)
}

type cacheEntry struct {
	resp      Response
	expiresAt time.Time
}

// resultCache memoizes validation responses by request signature. Entries
// expire after the TTL and the cache holds at most maxEntries; when full,
// the soonest-expiring entries go first.
type resultCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func newResultCache() *resultCache {
	return &resultCache{
		entries:    map[string]cacheEntry{},
		ttl:        cacheTTL,
		maxEntries: cacheMaxEntries,
		now:        time.Now,
	}
}

func (c *resultCache) get(key string) (Response, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return Response{}, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return Response{}, false
	}
	return entry.resp, true
}

func (c *resultCache) put(key string, resp Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = cacheEntry{resp: resp, expiresAt: c.now().Add(c.ttl)}
}

// evictLocked drops expired entries, then the soonest-expiring ones until
// there is room for one more.
func (c *resultCache) evictLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	for len(c.entries) >= c.maxEntries {
		var oldestKey string
		var oldest time.Time
		for key, entry := range c.entries {
			if oldestKey == "" || entry.expiresAt.Before(oldest) {
				oldestKey = key
				oldest = entry.expiresAt
			}
		}
		delete(c.entries, oldestKey)
	}
}
