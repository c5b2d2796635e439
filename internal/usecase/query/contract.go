package query

import (
	"context"

	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/domain/criteria"
	"github.com/storelens/shopdex/internal/domain/search"
)

// Extractor turns free-text queries into structured filter intent. Its
// output is untrusted until validated against the catalog vocabulary.
type Extractor interface {
	ExtractCategories(ctx context.Context, query string, available []string) (include, exclude []string, err error)
	ExtractIntendedBrands(ctx context.Context, query string) (criteria.IntendedBrands, error)
	ExtractPriceSorting(ctx context.Context, query string) (*criteria.PriceCondition, *criteria.Sorting, error)
	MapAttributes(ctx context.Context, query string, attrs []criteria.AttributeMap) (criteria.AttributeMapping, error)
}

// Catalog provides retrieval and the facet vocabulary.
type Catalog interface {
	Search(ctx context.Context, vector []float32, f search.ProductFilter, limit, offset int) ([]search.Result, error)
	Brands(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
