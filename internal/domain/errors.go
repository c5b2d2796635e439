package domain

import "errors"

var (
	// ErrProductNotFound signals a missing product.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct signals a product that fails validation.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrInvalidQuery signals a search query that fails validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrExtractionFailed signals that the structured-extraction provider was
	// unreachable or returned a payload that does not conform to the requested
	// schema. Extraction nodes recover from it locally; it never aborts a query.
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrRetrievalFailed signals that the vector index was unreachable.
	// Fatal for the query: there is no data to return.
	ErrRetrievalFailed = errors.New("retrieval failed")
	// ErrVocabularyUnavailable signals that the catalog facet vocabulary could
	// not be loaded. Brand and category intent cannot be validated without it,
	// so this is fatal for the query.
	ErrVocabularyUnavailable = errors.New("catalog vocabulary unavailable")
)
