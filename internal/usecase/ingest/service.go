// Package ingest handles product indexing: validation, searchable text
// assembly, vectorization and storage, one product at a time or in bounded
// concurrent batches.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain"
)

// Service handles product ingestion with automatic vectorization.
type Service struct {
	catalog  Catalog
	embedder Embedder
	logger   *zap.Logger

	batchWorkers int
	maxBatchSize int
}

// New creates an ingestion service.
func New(catalog Catalog, embedder Embedder, logger *zap.Logger) *Service {
	return &Service{
		catalog:      catalog,
		embedder:     embedder,
		logger:       logger,
		batchWorkers: defaultBatchWorkers,
		maxBatchSize: defaultMaxBatchSize,
	}
}

// WithBatchLimits configures batch concurrency and size limits.
func (s *Service) WithBatchLimits(workers, maxSize int) *Service {
	if workers > 0 {
		s.batchWorkers = workers
	}
	if maxSize > 0 {
		s.maxBatchSize = maxSize
	}
	return s
}

// Upsert validates a product, vectorizes its searchable text and stores it.
func (s *Service) Upsert(ctx context.Context, p *domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result, err := s.embedder.Embed(ctx, EmbeddingText(p))
	if err != nil {
		return fmt.Errorf("vectorize product: %w", err)
	}

	if err := s.catalog.Save(ctx, p, result.Embedding); err != nil {
		return fmt.Errorf("save product: %w", err)
	}

	s.logger.Debug("Product indexed",
		zap.String("external_id", p.ExternalID), zap.Int("tokens", result.TotalTokens))
	return nil
}

// Get retrieves a product by external ID.
func (s *Service) Get(ctx context.Context, externalID string) (domain.Product, error) {
	p, err := s.catalog.Get(ctx, externalID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Delete removes a product from the index.
func (s *Service) Delete(ctx context.Context, externalID string) error {
	if err := s.catalog.Delete(ctx, externalID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// EmbeddingText assembles the text blob a product is vectorized from. One
// line per signal, blank parts omitted, so semantically close products land
// close in vector space regardless of which fields they fill.
func EmbeddingText(p *domain.Product) string {
	parts := make([]string, 0, 6)

	add := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		parts = append(parts, label+": "+value)
	}

	add("Title", p.Title)
	add("Brand", p.Brand)
	add("Category", p.Category)
	add("Description", p.Description)
	if len(p.Keywords) > 0 {
		add("Keywords", strings.Join(p.Keywords, ", "))
	}
	if len(p.Attributes) > 0 {
		specs := make([]string, 0, len(p.Attributes))
		for _, a := range p.Attributes {
			if a.Name == "" || a.Value == "" {
				continue
			}
			specs = append(specs, a.Name+" "+a.Value)
		}
		add("Specs", strings.Join(specs, ", "))
	}

	return strings.Join(parts, "\n")
}
