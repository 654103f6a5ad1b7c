package embedding

import "context"

// Embedder turns text into fixed-width vectors. Implementations return
// vectors of exactly Dimension() values.
type Embedder interface {
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error)
	Dimension() int
}
