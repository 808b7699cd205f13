package adapter

import (
	"context"
	"time"
)

// SummaryCache caches serialized analytics summaries keyed by time range.
// Implementations are expected to be out-of-process (redis); a nil cache is
// treated as a cache that never hits.
type SummaryCache interface {
	// Get returns the cached payload for the key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate drops every cached summary. Called after any expense or
	// category mutation.
	Invalidate(ctx context.Context) error
}
