package catalog

import (
	"context"
	"testing"

	"github.com/storelens/shopdex/internal/db"
	"github.com/storelens/shopdex/internal/domain"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hSetFn        func(ctx context.Context, key string, fields map[string]string) error
	hGetAllFn     func(ctx context.Context, key string) (map[string]string, error)
	delFn         func(ctx context.Context, key string) error
	existsFn      func(ctx context.Context, key string) (bool, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	searchKNNFn   func(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	tagValuesFn   func(ctx context.Context, index, field string) ([]string, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hSetFn != nil {
		return m.hSetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hGetAllFn != nil {
		return m.hGetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	if m.searchKNNFn != nil {
		return m.searchKNNFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) TagValues(ctx context.Context, index, field string) ([]string, error) {
	if m.tagValuesFn != nil {
		return m.tagValuesFn(ctx, index, field)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, Config{
		KeyPrefix:       "shopdex:",
		VectorDim:       4,
		HNSWM:           16,
		HNSWEFConstruct: 200,
	})
	return repo, ms
}

func testVector() []float32 {
	vec := make([]float32, 4)
	for i := range vec {
		vec[i] = 0.1
	}
	return vec
}

func testProduct() *domain.Product {
	return &domain.Product{
		ExternalID: "p-1",
		Title:      "ThinkPad X1 Carbon",
		Brand:      "Lenovo",
		Category:   "Laptops",
		Price:      domain.Price{Amount: 1499.99, Currency: domain.CurrencyUSD},
		Attributes: []domain.Attribute{
			{Name: "RAM", Value: "16GB"},
			{Name: "Color", Value: "Black"},
		},
	}
}
