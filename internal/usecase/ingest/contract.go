package ingest

import (
	"context"

	"github.com/storelens/shopdex/internal/domain"
)

// Catalog defines the storage contract for products.
type Catalog interface {
	Save(ctx context.Context, p *domain.Product, vector []float32) error
	Get(ctx context.Context, externalID string) (domain.Product, error)
	Delete(ctx context.Context, externalID string) error
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
