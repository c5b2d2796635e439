// Package chi exposes the HTTP API: query search, product CRUD, batch
// ingestion, health and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain"
	healthuc "github.com/storelens/shopdex/internal/usecase/health"
	ingestuc "github.com/storelens/shopdex/internal/usecase/ingest"
	queryuc "github.com/storelens/shopdex/internal/usecase/query"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the use case services into HTTP handlers.
type Server struct {
	search        *queryuc.Service
	products      *ingestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *queryuc.Service,
	products *ingestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		products: products,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, codeProductNotFound),
		sentinelHandler(domain.ErrInvalidProduct, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadRequest, codeVectorDimMismatch),
		sentinelHandler(domain.ErrVocabularyUnavailable, http.StatusBadGateway, codeUpstreamUnavailable),
		sentinelHandler(domain.ErrRetrievalFailed, http.StatusBadGateway, codeUpstreamUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeUpstreamUnavailable),
	}
	return s
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.Search)
	r.Route("/products", func(r chi.Router) {
		r.Post("/batch", s.UpsertBatch)
		r.Put("/{id}", s.UpsertProduct)
		r.Get("/{id}", s.GetProduct)
		r.Delete("/{id}", s.DeleteProduct)
	})
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Search handles GET /search?query=...
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query parameter is required")
		return
	}

	resp, err := s.search.Search(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponseFrom(q, resp))
}

// UpsertProduct handles PUT /products/{id}.
func (s *Server) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if p.ExternalID == "" {
		p.ExternalID = id
	}
	if p.ExternalID != id {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "externalId does not match URL id")
		return
	}

	if err := s.products.Upsert(r.Context(), &p); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// GetProduct handles GET /products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct handles DELETE /products/{id}.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertBatch handles POST /products/batch.
func (s *Server) UpsertBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "items is required")
		return
	}

	results, err := s.products.UpsertBatch(r.Context(), req.Items)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := batchResponse{Results: make([]batchResultItem, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, batchResultFrom(res))
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProductNotFound,
		domain.ErrInvalidProduct,
		domain.ErrInvalidQuery,
		domain.ErrVectorDimMismatch,
		domain.ErrVocabularyUnavailable,
		domain.ErrRetrievalFailed,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func batchErrorCode(err error) errorCode {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return codeProductNotFound
	case errors.Is(err, domain.ErrInvalidProduct):
		return codeValidationFailed
	case errors.Is(err, domain.ErrVectorDimMismatch):
		return codeVectorDimMismatch
	case errors.Is(err, domain.ErrEmbeddingProviderError):
		return codeUpstreamUnavailable
	default:
		return codeInternalError
	}
}
