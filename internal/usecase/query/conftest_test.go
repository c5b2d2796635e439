package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/domain/criteria"
	"github.com/storelens/shopdex/internal/domain/search"
)

type mockExtractor struct {
	extractCategoriesFn     func(ctx context.Context, query string, available []string) ([]string, []string, error)
	extractIntendedBrandsFn func(ctx context.Context, query string) (criteria.IntendedBrands, error)
	extractPriceSortingFn   func(ctx context.Context, query string) (*criteria.PriceCondition, *criteria.Sorting, error)
	mapAttributesFn         func(ctx context.Context, query string, attrs []criteria.AttributeMap) (criteria.AttributeMapping, error)
}

func (m *mockExtractor) ExtractCategories(ctx context.Context, query string, available []string) ([]string, []string, error) {
	if m.extractCategoriesFn != nil {
		return m.extractCategoriesFn(ctx, query, available)
	}
	return nil, nil, nil
}

func (m *mockExtractor) ExtractIntendedBrands(ctx context.Context, query string) (criteria.IntendedBrands, error) {
	if m.extractIntendedBrandsFn != nil {
		return m.extractIntendedBrandsFn(ctx, query)
	}
	return criteria.IntendedBrands{}, nil
}

func (m *mockExtractor) ExtractPriceSorting(ctx context.Context, query string) (*criteria.PriceCondition, *criteria.Sorting, error) {
	if m.extractPriceSortingFn != nil {
		return m.extractPriceSortingFn(ctx, query)
	}
	return nil, nil, nil
}

func (m *mockExtractor) MapAttributes(ctx context.Context, query string, attrs []criteria.AttributeMap) (criteria.AttributeMapping, error) {
	if m.mapAttributesFn != nil {
		return m.mapAttributesFn(ctx, query, attrs)
	}
	return criteria.AttributeMapping{}, nil
}

type searchCall struct {
	filter search.ProductFilter
	limit  int
	offset int
}

type mockCatalog struct {
	brands     []string
	categories []string
	brandsErr  error

	searchFn func(ctx context.Context, vector []float32, f search.ProductFilter, limit, offset int) ([]search.Result, error)
	searches []searchCall
}

func (m *mockCatalog) Search(ctx context.Context, vector []float32, f search.ProductFilter, limit, offset int) ([]search.Result, error) {
	m.searches = append(m.searches, searchCall{filter: f, limit: limit, offset: offset})
	if m.searchFn != nil {
		return m.searchFn(ctx, vector, f, limit, offset)
	}
	return nil, nil
}

func (m *mockCatalog) Brands(ctx context.Context) ([]string, error) {
	if m.brandsErr != nil {
		return nil, m.brandsErr
	}
	return m.brands, nil
}

func (m *mockCatalog) Categories(ctx context.Context) ([]string, error) {
	return m.categories, nil
}

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
	calls  int
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	m.calls++
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return m.result, nil
}

func defaultCatalog() *mockCatalog {
	return &mockCatalog{
		brands:     []string{"Apple", "Lenovo", "Dell"},
		categories: []string{"Laptops", "Smartphones", "Tablets"},
	}
}

func defaultEmbedder() *mockEmbedder {
	return &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{0.1, 0.2, 0.3}}}
}

func newTestService(ext *mockExtractor, cat *mockCatalog, emb *mockEmbedder) *Service {
	return New(ext, cat, emb, Config{}, zap.NewNop())
}

func laptop(id, brand string, price float64, attrs ...domain.Attribute) search.Result {
	return search.Result{
		Score: 0.9,
		Product: domain.Product{
			ExternalID: id,
			Title:      "Laptop " + id,
			Brand:      brand,
			Category:   "Laptops",
			Price:      domain.Price{Amount: price, Currency: domain.CurrencyUSD},
			Attributes: attrs,
		},
	}
}
