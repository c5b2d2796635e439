// Package query implements the search workflow: structured intent
// extraction, catalog grounding, vector retrieval, attribute discovery and
// mapping, and the fallback policy that ties them together.
package query

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/domain/criteria"
	"github.com/storelens/shopdex/internal/metrics"
)

const (
	defaultInitialLimit = 10
	defaultFinalLimit   = 20
)

// Config tunes the workflow sample sizes.
type Config struct {
	// InitialLimit is the sample size of the discovery search.
	InitialLimit int
	// FinalLimit is the maximum number of products returned to the caller.
	FinalLimit int
}

// Service runs free-text queries through the full search workflow.
type Service struct {
	extractor Extractor
	catalog   Catalog
	embedder  Embedder
	logger    *zap.Logger

	initialLimit int
	finalLimit   int
}

// New creates a workflow service. Zero limits fall back to defaults.
func New(extractor Extractor, catalog Catalog, embedder Embedder, cfg Config, logger *zap.Logger) *Service {
	if cfg.InitialLimit <= 0 {
		cfg.InitialLimit = defaultInitialLimit
	}
	if cfg.FinalLimit <= 0 {
		cfg.FinalLimit = defaultFinalLimit
	}
	return &Service{
		extractor:    extractor,
		catalog:      catalog,
		embedder:     embedder,
		logger:       logger,
		initialLimit: cfg.InitialLimit,
		finalLimit:   cfg.FinalLimit,
	}
}

// Search answers a free-text shopping query. The workflow degrades
// gracefully: extraction and mapping failures broaden the search, while
// vocabulary, embedding and retrieval failures abort it.
func (s *Service) Search(ctx context.Context, query string) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is empty", domain.ErrInvalidQuery)
	}

	start := time.Now()
	st := &state{query: query}

	if err := s.loadVocabulary(ctx, st); err != nil {
		return nil, err
	}

	s.runExtraction(ctx, st)

	if stop := s.validateBrands(st); stop {
		return s.finish(st, start), nil
	}

	if err := s.embedQuery(ctx, st); err != nil {
		return nil, err
	}

	if err := s.initialSearch(ctx, st); err != nil {
		return nil, err
	}

	if len(st.intermediate) == 0 {
		st.status = criteria.StatusNoResults
		return s.finish(st, start), nil
	}

	st.discovered = discoverAttributes(st.intermediate)
	s.mapAttributes(ctx, st)

	if err := s.finalSearch(ctx, st); err != nil {
		return nil, err
	}

	applySorting(st)

	return s.finish(st, start), nil
}

// loadVocabulary fetches the catalog facets that ground every later step.
func (s *Service) loadVocabulary(ctx context.Context, st *state) error {
	brands, err := s.catalog.Brands(ctx)
	if err != nil {
		return fmt.Errorf("load brands: %w: %w", domain.ErrVocabularyUnavailable, err)
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w: %w", domain.ErrVocabularyUnavailable, err)
	}

	st.brands = brands
	st.categories = categories
	return nil
}

// runExtraction executes the three stage-1 extractors concurrently. Each
// writes a disjoint field group of the state, so no synchronization beyond
// the join is needed.
func (s *Service) runExtraction(ctx context.Context, st *state) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.extractCategories(ctx, st)
	}()
	go func() {
		defer wg.Done()
		s.extractBrands(ctx, st)
	}()
	go func() {
		defer wg.Done()
		s.extractPriceSorting(ctx, st)
	}()
	wg.Wait()
}

// validateBrands grounds the intended brands against the catalog and
// reports whether the workflow should stop. A query for brands the catalog
// does not carry returns zero products rather than someone else's.
func (s *Service) validateBrands(st *state) (stop bool) {
	v := criteria.ValidateBrands(st.intended, st.brands)
	st.brandStatus = v.Status
	st.criteria.Brands = v.Brands
	st.criteria.ExcludeBrands = v.ExcludeBrands

	if v.Status == criteria.BrandNotFound {
		s.logger.Info("No intended brand exists in the catalog, returning empty result",
			zap.String("query", st.query), zap.Strings("intended", st.intended.Brands))
		st.status = criteria.StatusNoResults
		return true
	}
	return false
}

func (s *Service) embedQuery(ctx context.Context, st *state) error {
	res, err := s.embedder.Embed(ctx, st.query)
	if err != nil {
		return fmt.Errorf("embed query: %w", err)
	}
	st.vector = res.Embedding
	return nil
}

// finish records workflow metrics and assembles the response.
func (s *Service) finish(st *state, start time.Time) *Response {
	elapsed := time.Since(start)
	metrics.WorkflowSearchesTotal.WithLabelValues(string(st.status)).Inc()
	metrics.WorkflowDuration.Observe(elapsed.Seconds())

	s.logger.Info("Search workflow finished",
		zap.String("query", st.query),
		zap.String("status", string(st.status)),
		zap.String("brand_validation", string(st.brandStatus)),
		zap.Int("products", len(st.results)),
		zap.Duration("duration", elapsed))

	return buildResponse(st)
}
