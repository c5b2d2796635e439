package query

import (
	"context"
	"unicode"

	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain/criteria"
)

// The stage-1 extraction nodes. Each one fails open: an extraction error
// degrades the query to a broader search instead of failing it.

// extractCategories grounds the model's category picks against the catalog
// vocabulary and drops anything unknown.
func (s *Service) extractCategories(ctx context.Context, st *state) {
	include, exclude, err := s.extractor.ExtractCategories(ctx, st.query, st.categories)
	if err != nil {
		s.logger.Warn("Category extraction failed, continuing without category filters",
			zap.String("query", st.query), zap.Error(err))
		return
	}

	validInclude := criteria.MatchAgainst(include, st.categories)
	validExclude := criteria.MatchAgainst(exclude, st.categories)

	st.criteria.Categories = criteria.Disjoint(validInclude, validExclude)
	st.criteria.ExcludeCategories = validExclude
}

// extractBrands records raw brand intent. Catalog validation happens later
// in validateBrands; only exclusion overlap is resolved here.
func (s *Service) extractBrands(ctx context.Context, st *state) {
	intended, err := s.extractor.ExtractIntendedBrands(ctx, st.query)
	if err != nil {
		s.logger.Warn("Brand extraction failed, continuing without brand filters",
			zap.String("query", st.query), zap.Error(err))
		return
	}

	intended.Brands = criteria.Disjoint(intended.Brands, intended.ExcludeBrands)
	st.intended = intended
}

// extractPriceSorting records the price condition and sorting preference.
// A price is accepted only when the query actually contains a digit, which
// blocks hallucinated amounts for queries like "cheap laptops".
func (s *Service) extractPriceSorting(ctx context.Context, st *state) {
	price, sorting, err := s.extractor.ExtractPriceSorting(ctx, st.query)
	if err != nil {
		s.logger.Warn("Price extraction failed, continuing without price filter",
			zap.String("query", st.query), zap.Error(err))
		return
	}

	if price != nil {
		switch {
		case !containsDigit(st.query):
			s.logger.Warn("Dropping price without a number in the query",
				zap.String("query", st.query), zap.Float64("amount", price.Amount))
			price = nil
		case !price.Operator.Valid():
			s.logger.Warn("Dropping price with unknown operator",
				zap.String("operator", string(price.Operator)))
			price = nil
		case price.Amount < 0:
			price = nil
		}
	}

	st.criteria.Price = price
	st.criteria.Sorting = sorting
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
