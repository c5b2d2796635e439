package query

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/domain/criteria"
	"github.com/storelens/shopdex/internal/domain/search"
	"github.com/storelens/shopdex/internal/metrics"
)

// initialSearch retrieves a small sample with the basic filters only. The
// sample feeds attribute discovery; its contents never reach the caller.
func (s *Service) initialSearch(ctx context.Context, st *state) error {
	f := search.FromCriteria(st.criteria, nil)

	results, err := s.catalog.Search(ctx, st.vector, f, s.initialLimit, 0)
	if err != nil {
		return fmt.Errorf("initial search: %w: %w", domain.ErrRetrievalFailed, err)
	}

	st.intermediate = results
	return nil
}

// finalSearch retrieves the answer with the full filter set. A zero-result
// outcome with attribute filters applied triggers one fallback retry with
// the attribute constraints stripped; a fallback that finds products marks
// the run partial.
func (s *Service) finalSearch(ctx context.Context, st *state) error {
	f := search.FromCriteria(st.criteria, st.attributeFilters)

	results, err := s.catalog.Search(ctx, st.vector, f, s.finalLimit, 0)
	if err != nil {
		return fmt.Errorf("final search: %w: %w", domain.ErrRetrievalFailed, err)
	}

	if len(results) > 0 {
		st.results = results
		st.status = criteria.StatusSuccess
		return nil
	}

	if len(st.attributeFilters) == 0 {
		st.status = criteria.StatusNoResults
		return nil
	}

	s.logger.Info("No products with attribute filters, retrying without them",
		zap.String("query", st.query), zap.Int("attribute_filters", len(st.attributeFilters)))
	metrics.WorkflowFallbacksTotal.Inc()
	st.fellBack = true

	fallback, err := s.catalog.Search(ctx, st.vector, f.WithoutAttributes(), s.finalLimit, 0)
	if err != nil {
		return fmt.Errorf("fallback search: %w: %w", domain.ErrRetrievalFailed, err)
	}

	if len(fallback) > 0 {
		st.results = fallback
		st.status = criteria.StatusPartial
		return nil
	}

	st.status = criteria.StatusNoResults
	return nil
}

// applySorting reorders results by price when the query expressed a
// preference. The sort is stable, so equal prices keep similarity order.
func applySorting(st *state) {
	sorting := st.criteria.Sorting
	if sorting == nil || sorting.Field != "price" || len(st.results) == 0 {
		return
	}

	sort.SliceStable(st.results, func(i, j int) bool {
		a := st.results[i].Product.Price.Amount
		b := st.results[j].Product.Price.Amount
		if sorting.Order == criteria.Desc {
			return a > b
		}
		return a < b
	})
}
