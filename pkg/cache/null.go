package cache

import (
	"context"
	"time"
)

// NullCache drops everything: every lookup misses and every layout or
// artifact is re-computed. It backs the --no-cache flag and tests that
// need deterministic pipeline runs.
type NullCache struct{}

// NewNullCache creates a cache that never stores.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
