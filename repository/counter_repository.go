package repository

import (
	"context"
	"time"
)

// CounterRepository keeps expiring request counters for rate limiting.
type CounterRepository interface {
	// Increment adds one to key and returns the new count. A new key expires
	// after ttl.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
