// Package db defines the storage facade implemented by the Redis store.
package db

import (
	"context"
	"time"

	"github.com/storelens/shopdex/internal/domain/search"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces, not on Store itself.
type Store interface {
	Pinger
	HashStore
	KVStore
	IndexManager
	Searcher
	FacetReader
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// KVStore provides simple key-value operations (embedding cache).
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// KNNQuery describes a vector similarity search with an optional hard
// pre-filter.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	Filter       search.ProductFilter
	K            int
	Offset       int
	ReturnFields []string
}

// SearchEntry is one raw hit from FT.SEARCH.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// SearchResult is the raw outcome of an FT.SEARCH call.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
}

// FacetReader lists the distinct values of a tag field: the catalog's
// vocabulary for brands, categories, and attribute pairs.
type FacetReader interface {
	TagValues(ctx context.Context, index, field string) ([]string, error)
}
