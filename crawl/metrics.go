package crawl

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for crawl sessions. All methods are
// safe on a nil receiver, so instrumenting is optional.
type Metrics struct {
	Registry        *prometheus.Registry
	PagesTotal      *prometheus.CounterVec
	FetchDuration   prometheus.Histogram
	DocumentsTotal  prometheus.Counter
	SchemaHitsTotal prometheus.Counter
	ErrorsTotal     *prometheus.CounterVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	pages := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crawl_pages_total",
			Help: "Total pages fetched by crawl sessions.",
		},
		[]string{"strategy"},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crawl_fetch_duration_seconds",
			Help:    "Page fetch latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	documents := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crawl_documents_total",
			Help: "Total documents produced by crawl sessions.",
		},
	)
	schemaHits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crawl_schema_hits_total",
			Help: "Total pages where a product schema was extracted.",
		},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crawl_errors_total",
			Help: "Total crawl errors by error code.",
		},
		[]string{"code"},
	)

	registry.MustRegister(pages, fetchDuration, documents, schemaHits, errorsTotal)

	return &Metrics{
		Registry:        registry,
		PagesTotal:      pages,
		FetchDuration:   fetchDuration,
		DocumentsTotal:  documents,
		SchemaHitsTotal: schemaHits,
		ErrorsTotal:     errorsTotal,
	}
}

// IncPage counts one fetched page for a fetch strategy.
func (m *Metrics) IncPage(strategy string) {
	if m == nil {
		return
	}
	m.PagesTotal.WithLabelValues(strategy).Inc()
}

// ObserveFetch records one page fetch duration.
func (m *Metrics) ObserveFetch(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
}

// IncDocument counts one produced document.
func (m *Metrics) IncDocument() {
	if m == nil {
		return
	}
	m.DocumentsTotal.Inc()
}

// IncSchemaHit counts one successful schema extraction.
func (m *Metrics) IncSchemaHit() {
	if m == nil {
		return
	}
	m.SchemaHitsTotal.Inc()
}

// IncError counts one crawl error by code.
func (m *Metrics) IncError(code string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(code).Inc()
}
