// Package cache provides result caching for the calculation API. The engine
// itself is pure and stateless; caching is a host-service concern layered on
// top of it.
package cache

import "context"

// Cache stores serialized calculation results keyed by a canonical input
// hash. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
