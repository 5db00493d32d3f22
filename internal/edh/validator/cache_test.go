package validator

import (
	"fmt"
	"testing"
	"time"
)

func TestResultCacheExpiry(t *testing.T) {
	c := newResultCache()
	current := time.Now()
	c.now = func() time.Time { return current }

	c.put("key", Response{Success: true})
	if _, ok := c.get("key"); !ok {
		t.Fatal("fresh entry should be served")
	}

	current = current.Add(c.ttl + time.Second)
	if _, ok := c.get("key"); ok {
		t.Error("expired entry should not be served")
	}

	c.mu.RLock()
	_, retained := c.entries["key"]
	c.mu.RUnlock()
	if retained {
		t.Error("expired entry should be dropped on read")
	}
}

func TestResultCacheBound(t *testing.T) {
	c := newResultCache()
	c.maxEntries = 3
	base := time.Now()
	step := time.Duration(0)
	c.now = func() time.Time { return base.Add(step) }

	for i := 0; i < 4; i++ {
		step = time.Duration(i) * time.Minute
		c.put(fmt.Sprintf("key-%d", i), Response{})
	}

	if len(c.entries) > 3 {
		t.Errorf("cache holds %d entries, want at most 3", len(c.entries))
	}
	if _, ok := c.get("key-0"); ok {
		t.Error("oldest entry should be evicted at capacity")
	}
	if _, ok := c.get("key-3"); !ok {
		t.Error("newest entry should be kept")
	}
}
