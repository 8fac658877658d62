package usecase

import (
	"context"
	"log"

	"placement-match/internal/infrastructure/cache"
	"placement-match/internal/infrastructure/embedding"
)

// Embedder memoizes provider lookups behind a vector cache. Lookups are keyed
// by logical entity id, not by text: profile edits reuse the key and simply
// overwrite the cached vector once the old one expires.
type Embedder struct {
	cache    cache.VectorCache
	provider embedding.Provider
	log      *log.Logger
}

func NewEmbedder(c cache.VectorCache, p embedding.Provider, logger *log.Logger) *Embedder {
	if logger == nil {
		logger = log.Default()
	}
	return &Embedder{cache: c, provider: p, log: logger}
}

// GetEmbedding returns the cached vector when present and fresh, otherwise
// asks the provider once and stores the result. Two concurrent misses for the
// same key both call the provider; the duplicate write is harmless.
func (e *Embedder) GetEmbedding(ctx context.Context, key, text string) ([]float64, error) {
	if vec, ok := e.cache.Get(ctx, key); ok {
		return vec, nil
	}

	vec, err := e.provider.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	e.cache.Put(ctx, key, vec)
	return vec, nil
}
