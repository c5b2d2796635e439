package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query workflow Prometheus metrics.
var (
	ExtractionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopdex",
			Name:      "extraction_requests_total",
			Help:      "Total number of LLM extraction calls",
		},
		[]string{"task", "status"},
	)

	ExtractionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopdex",
			Name:      "extraction_request_duration_seconds",
			Help:      "LLM extraction call duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"task"},
	)

	WorkflowSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopdex",
			Name:      "workflow_searches_total",
			Help:      "Completed query workflows by outcome",
		},
		[]string{"status"}, // "success" / "no_results" / "partial"
	)

	WorkflowFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shopdex",
			Name:      "workflow_fallbacks_total",
			Help:      "Final searches retried without attribute filters",
		},
	)

	WorkflowDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shopdex",
			Name:      "workflow_duration_seconds",
			Help:      "End-to-end query workflow duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)
)

var workflowMetricsRegistered bool

// RegisterWorkflowMetrics registers Prometheus workflow metrics. Must be called once from main.
func RegisterWorkflowMetrics() {
	if workflowMetricsRegistered {
		return
	}
	prometheus.MustRegister(ExtractionRequestsTotal)
	prometheus.MustRegister(ExtractionRequestDuration)
	prometheus.MustRegister(WorkflowSearchesTotal)
	prometheus.MustRegister(WorkflowFallbacksTotal)
	prometheus.MustRegister(WorkflowDuration)
	workflowMetricsRegistered = true
}
