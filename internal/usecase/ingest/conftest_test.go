package ingest

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain"
)

type mockCatalog struct {
	mu sync.Mutex

	saveFn   func(ctx context.Context, p *domain.Product, vector []float32) error
	getFn    func(ctx context.Context, externalID string) (domain.Product, error)
	deleteFn func(ctx context.Context, externalID string) error

	saved []string
}

func (m *mockCatalog) Save(ctx context.Context, p *domain.Product, vector []float32) error {
	m.mu.Lock()
	m.saved = append(m.saved, p.ExternalID)
	m.mu.Unlock()
	if m.saveFn != nil {
		return m.saveFn(ctx, p, vector)
	}
	return nil
}

func (m *mockCatalog) Get(ctx context.Context, externalID string) (domain.Product, error) {
	if m.getFn != nil {
		return m.getFn(ctx, externalID)
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (m *mockCatalog) Delete(ctx context.Context, externalID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, externalID)
	}
	return nil
}

type mockEmbedder struct {
	mu     sync.Mutex
	result domain.EmbeddingResult
	err    error
	texts  []string
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return m.result, nil
}

func newTestService(cat *mockCatalog, emb *mockEmbedder) *Service {
	return New(cat, emb, zap.NewNop())
}

func validProduct(id string) domain.Product {
	return domain.Product{
		ExternalID: id,
		Title:      "ThinkPad X1 Carbon",
		Brand:      "Lenovo",
		Category:   "Laptops",
		Price:      domain.Price{Amount: 1499.99, Currency: domain.CurrencyUSD},
		Attributes: []domain.Attribute{{Name: "RAM", Value: "16GB"}},
	}
}
