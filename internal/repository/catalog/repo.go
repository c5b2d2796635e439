// Package catalog persists products as Redis hashes indexed for hybrid
// vector plus filter search.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/storelens/shopdex/internal/db"
	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/domain/search"
)

// store is the consumer interface for the product catalog (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	TagValues(ctx context.Context, index, field string) ([]string, error)
}

// Config holds catalog storage parameters.
type Config struct {
	KeyPrefix       string
	VectorDim       int
	HNSWM           int
	HNSWEFConstruct int
}

// Repo implements the catalog persistence used by the ingest and query
// usecases.
type Repo struct {
	store     store
	keyPrefix string
	indexName string
	vectorDim int
	hnswM     int
	hnswEF    int
}

// New creates a catalog repository.
func New(s store, cfg Config) *Repo {
	return &Repo{
		store:     s,
		keyPrefix: cfg.KeyPrefix + "products:",
		indexName: cfg.KeyPrefix + "products:idx",
		vectorDim: cfg.VectorDim,
		hnswM:     cfg.HNSWM,
		hnswEF:    cfg.HNSWEFConstruct,
	}
}

func (r *Repo) key(externalID string) string {
	return r.keyPrefix + externalID
}

// EnsureIndex creates the product search index if it does not exist yet.
// Tag fields are case-sensitive so facet values keep catalog casing.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := &db.IndexDefinition{
		Name:     r.indexName,
		Prefixes: []string{r.keyPrefix},
		Fields: []db.IndexField{
			{Name: db.FieldBrand, Type: db.IndexFieldTag, TagCaseSensitive: true},
			{Name: db.FieldCategory, Type: db.IndexFieldTag, TagCaseSensitive: true},
			{Name: db.FieldPrice, Type: db.IndexFieldNumeric},
			{Name: db.FieldAttrs, Type: db.IndexFieldTag, TagSeparator: db.AttrSeparator, TagCaseSensitive: true},
			{
				Name:              db.FieldVector,
				Alias:             db.FieldVectorAttr,
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         r.vectorDim,
				VectorDistance:    db.DistanceCosine,
				VectorM:           r.hnswM,
				VectorEFConstruct: r.hnswEF,
			},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", r.indexName, err)
	}
	return nil
}

// Save upserts a product together with its embedding.
func (r *Repo) Save(ctx context.Context, p *domain.Product, vector []float32) error {
	if len(vector) != r.vectorDim {
		return fmt.Errorf("%w: got %d, index expects %d",
			domain.ErrVectorDimMismatch, len(vector), r.vectorDim)
	}

	fields, err := productToHash(p, vector)
	if err != nil {
		return err
	}

	key := r.key(p.ExternalID)
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns a product by its external ID.
func (r *Repo) Get(ctx context.Context, externalID string) (domain.Product, error) {
	key := r.key(externalID)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domain.Product{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	// HGETALL on a missing key yields an empty map, not an error.
	if len(fields) == 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return hashToProduct(fields)
}

// Delete removes a product by its external ID.
func (r *Repo) Delete(ctx context.Context, externalID string) error {
	key := r.key(externalID)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Search runs a KNN query with the filter applied as a hard pre-filter and
// returns scored products ordered by similarity.
func (r *Repo) Search(ctx context.Context, vector []float32, f search.ProductFilter, limit, offset int) ([]search.Result, error) {
	if len(vector) != r.vectorDim {
		return nil, fmt.Errorf("%w: got %d, index expects %d",
			domain.ErrVectorDimMismatch, len(vector), r.vectorDim)
	}

	result, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.indexName,
		Vector:       vector,
		Filter:       f,
		K:            limit,
		Offset:       offset,
		ReturnFields: []string{db.FieldDoc, db.FieldScore},
	})
	if err != nil {
		return nil, fmt.Errorf("search knn: %w", err)
	}

	results := make([]search.Result, 0, len(result.Entries))
	for _, entry := range result.Entries {
		p, err := hashToProduct(entry.Fields)
		if err != nil {
			// A hit with an unreadable payload is dropped, not fatal.
			continue
		}
		results = append(results, search.Result{Score: entry.Score, Product: p})
	}
	return results, nil
}

// maxFacetValues caps the vocabulary returned per facet field. FT.TAGVALS
// has no server-side limit, so the cap is applied here after sorting.
const maxFacetValues = 1000

// Brands returns the distinct brand values present in the catalog, with
// original casing.
func (r *Repo) Brands(ctx context.Context) ([]string, error) {
	values, err := r.facetValues(ctx, db.FieldBrand)
	if err != nil {
		return nil, fmt.Errorf("brand facets: %w", err)
	}
	return values, nil
}

// Categories returns the distinct category values present in the catalog.
func (r *Repo) Categories(ctx context.Context) ([]string, error) {
	values, err := r.facetValues(ctx, db.FieldCategory)
	if err != nil {
		return nil, fmt.Errorf("category facets: %w", err)
	}
	return values, nil
}

func (r *Repo) facetValues(ctx context.Context, field string) ([]string, error) {
	values, err := r.store.TagValues(ctx, r.indexName, field)
	if err != nil {
		return nil, err
	}
	sort.Strings(values)
	if len(values) > maxFacetValues {
		values = values[:maxFacetValues]
	}
	return values, nil
}
