package search

import "github.com/storelens/shopdex/internal/domain"

// Result is a single search hit: a similarity score in [0,1] and the matched
// product, passed through unchanged from the index.
type Result struct {
	Score   float64
	Product domain.Product
}
