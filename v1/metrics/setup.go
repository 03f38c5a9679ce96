package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a Prometheus-backed observability.Observer for embedding
// clients, plus the registry and HTTP plumbing to expose it.
//
// Each instance owns an isolated registry, so several services in one
// process never collide on metric names.
type Metrics struct {
	// Registry is the Prometheus registry all metrics live in.
	Registry *prometheus.Registry

	// Server exposes the /metrics endpoint when Config.Address is set.
	Server *http.Server

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	batchSize         *prometheus.HistogramVec
}

// NewMetrics builds a Metrics instance from cfg.
//
// All metrics carry a constant service label and are keyed by the
// emitting component (provider package), operation, and, for the
// counter, success/error status.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,

		operationsTotal: newCounterVec(
			"embedding_operations_total",
			"Total embedding operations, by component, operation, and status.",
			[]string{"component", "operation", "status"},
		),
		operationDuration: newHistogramVec(
			"embedding_operation_duration_seconds",
			"Duration of embedding operations in seconds.",
			[]string{"component", "operation"},
			prometheus.DefBuckets,
		),
		batchSize: newHistogramVec(
			"embedding_batch_size",
			"Number of texts per embedding operation.",
			[]string{"component"},
			[]float64{1, 2, 4, 8, 16, 32, 64, 128},
		),
	}

	wrapped.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.batchSize,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: m.Handler(),
	}

	return m
}

// Handler returns the scrape handler for this instance's registry, for
// mounting on an existing mux when no standalone server is wanted.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
