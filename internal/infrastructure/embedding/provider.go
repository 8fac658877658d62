package embedding

import "context"

// Provider converts text into a fixed-length embedding vector.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ProviderError wraps any failure coming from the embedding backend. Rate
// limits, auth failures and malformed requests all surface as this one kind;
// callers only decide whether to fall back to rule-based scoring.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "embedding provider: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
