package chi

import (
	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/usecase/ingest"
	"github.com/storelens/shopdex/internal/usecase/query"
)

// errorCode is a machine-readable error identifier in error responses.
type errorCode string

const (
	codeBadRequest          errorCode = "bad_request"
	codeValidationFailed    errorCode = "validation_failed"
	codeProductNotFound     errorCode = "product_not_found"
	codeVectorDimMismatch   errorCode = "vector_dim_mismatch"
	codeUpstreamUnavailable errorCode = "upstream_unavailable"
	codeInternalError       errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// searchResponse is the GET /search payload.
type searchResponse struct {
	Meta  searchMeta   `json:"meta"`
	Items []query.Item `json:"items"`
}

type searchMeta struct {
	Total                int                   `json:"total"`
	Query                string                `json:"query"`
	SearchStatus         string                `json:"searchStatus"`
	AppliedFilters       query.AppliedFilters  `json:"appliedFilters"`
	DiscoveredAttributes []query.AttributeMap  `json:"discoveredAttributes,omitempty"`
	Reasoning            string                `json:"reasoning,omitempty"`
}

func searchResponseFrom(queryText string, resp *query.Response) searchResponse {
	return searchResponse{
		Meta: searchMeta{
			Total:                len(resp.Products),
			Query:                queryText,
			SearchStatus:         string(resp.Status),
			AppliedFilters:       resp.AppliedFilters,
			DiscoveredAttributes: resp.DiscoveredAttributes,
			Reasoning:            resp.Reasoning,
		},
		Items: resp.Products,
	}
}

// batchRequest is the POST /products/batch payload.
type batchRequest struct {
	Items []domain.Product `json:"items"`
}

type batchResponse struct {
	Results []batchResultItem `json:"results"`
}

type batchResultItem struct {
	ExternalID string         `json:"externalId"`
	Status     string         `json:"status"`
	Error      *errorResponse `json:"error,omitempty"`
}

func batchResultFrom(r ingest.Result) batchResultItem {
	item := batchResultItem{ExternalID: r.ExternalID, Status: "ok"}
	if !r.OK() {
		item.Status = "error"
		item.Error = &errorResponse{
			Code:    batchErrorCode(r.Err),
			Message: safeDomainMessage(r.Err),
		}
	}
	return item
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
