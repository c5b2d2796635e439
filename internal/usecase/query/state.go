package query

import (
	"github.com/storelens/shopdex/internal/domain/criteria"
	"github.com/storelens/shopdex/internal/domain/search"
)

// state carries one query through the workflow. The three stage-1 extractors
// run concurrently but write disjoint field groups: categories, intended
// brand intent, price and sorting. Everything downstream runs sequentially.
type state struct {
	query string

	// Catalog vocabulary, loaded up front.
	brands     []string
	categories []string

	// Accumulated structured intent. Brand fields are written only by
	// validation, never by raw extraction.
	criteria criteria.SearchCriteria
	intended criteria.IntendedBrands

	brandStatus criteria.BrandValidationStatus

	vector []float32

	// Intermediate retrieval sample and what was learned from it.
	intermediate []search.Result
	discovered   []criteria.AttributeMap

	attributeFilters []criteria.AttributeFilter
	mappingReasoning string

	fellBack bool

	results []search.Result
	status  criteria.SearchStatus
}
