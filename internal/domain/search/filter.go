// Package search holds the provider-agnostic query filter and result types
// shared between the workflow and the catalog repository.
package search

import "github.com/storelens/shopdex/internal/domain/criteria"

// ProductFilter is a provider-agnostic hard-filter object built from
// SearchCriteria. Include lists match any of their values; exclude lists
// reject any of theirs. Price bounds are inclusive.
type ProductFilter struct {
	Categories        []string
	ExcludeCategories []string
	Brands            []string
	ExcludeBrands     []string
	PriceMin          *float64
	PriceMax          *float64
	Attributes        []criteria.AttributeFilter
}

// IsEmpty reports whether the filter constrains nothing.
func (f ProductFilter) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		len(f.ExcludeCategories) == 0 &&
		len(f.Brands) == 0 &&
		len(f.ExcludeBrands) == 0 &&
		f.PriceMin == nil &&
		f.PriceMax == nil &&
		len(f.Attributes) == 0
}

// WithoutAttributes returns a copy with attribute clauses stripped. Attribute
// constraints are the least catalog-verified filters, so they are the first
// to be relaxed on a zero-result fallback.
func (f ProductFilter) WithoutAttributes() ProductFilter {
	f.Attributes = nil
	return f
}

// FromCriteria builds a ProductFilter from validated search criteria plus
// optional attribute filters. It is a pure function: identical inputs always
// yield an identical filter.
func FromCriteria(c criteria.SearchCriteria, attrs []criteria.AttributeFilter) ProductFilter {
	f := ProductFilter{
		Categories:        c.Categories,
		ExcludeCategories: c.ExcludeCategories,
		Brands:            c.Brands,
		ExcludeBrands:     c.ExcludeBrands,
	}

	if p := c.Price; p != nil {
		amount := p.Amount
		switch p.Operator {
		case criteria.OpLT:
			f.PriceMax = &amount
		case criteria.OpGT:
			f.PriceMin = &amount
		case criteria.OpEq:
			f.PriceMin = &amount
			f.PriceMax = &amount
		case criteria.OpRange:
			f.PriceMin = &amount
			if p.MaxAmount != nil {
				maxAmount := *p.MaxAmount
				f.PriceMax = &maxAmount
			}
		}
	}

	if len(attrs) > 0 {
		f.Attributes = attrs
	}

	return f
}
