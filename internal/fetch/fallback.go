// Package fetch provides a small primary/fallback strategy used by the
// classification data loaders. External sources (Scryfall tag queries, EDHRec
// pages) are best-effort: when the primary fetch keeps failing, callers get a
// compiled-in fallback value instead of an error.
package fetch

import (
	"context"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const defaultMaxTries = 3

// Func fetches a value from an external source.
type Func[T any] func(ctx context.Context) (T, error)

// Fallback composes a primary fetch with a static fallback value.
type Fallback[T any] struct {
	// Name identifies the dataset in log output (e.g. "tutor cards").
	Name string

	// Primary is retried with exponential backoff before giving up.
	Primary Func[T]

	// Secondary produces the fallback value. Must not fail.
	Secondary func() T

	// MaxTries bounds primary attempts. Zero means defaultMaxTries.
	MaxTries int
}

// Fetch tries the primary source, retrying transient failures, and falls back
// to the secondary value once attempts are exhausted. The returned bool is
// true when the value came from the primary source.
func (f *Fallback[T]) Fetch(ctx context.Context) (T, bool) {
	maxTries := f.MaxTries
	if maxTries <= 0 {
		maxTries = defaultMaxTries
	}

	backoffCfg := backoff.NewExponentialBackOff()
	backoffCfg.InitialInterval = 500 * time.Millisecond
	backoffCfg.MaxInterval = 8 * time.Second

	var lastErr error
	for attempt := 0; attempt < maxTries; attempt++ {
		if ctx.Err() != nil {
			break
		}

		value, err := f.Primary(ctx)
		if err == nil {
			return value, true
		}
		lastErr = err

		if attempt < maxTries-1 {
			sleep := backoffCfg.NextBackOff()
			select {
			case <-ctx.Done():
			case <-time.After(sleep):
			}
		}
	}

	if lastErr != nil {
		log.Printf("fetch: %s unavailable, using fallback: %v", f.Name, lastErr)
	}
	return f.Secondary(), false
}
