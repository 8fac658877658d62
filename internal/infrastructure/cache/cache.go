package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached embedding stays valid.
const DefaultTTL = 3600 * time.Second

// VectorCache memoizes text-to-vector lookups keyed by logical entity id
// (for example "job_<uuid>"). Entries older than the TTL are treated as
// absent. Concurrent lookups for the same key may race and both miss; that is
// fine because the corresponding provider call is idempotent and the last
// write wins.
type VectorCache interface {
	Get(ctx context.Context, key string) ([]float64, bool)
	Put(ctx context.Context, key string, vec []float64)
	Evict(ctx context.Context, key string)
}
