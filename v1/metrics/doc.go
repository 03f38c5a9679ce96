// Package metrics provides a Prometheus-backed implementation of the
// observability.Observer contract, plus a registry and scrape endpoint.
//
// # Overview
//
// A Metrics instance owns an isolated Prometheus registry with three
// built-in metrics:
//
//   - embedding_operations_total{component, operation, status}
//   - embedding_operation_duration_seconds{component, operation}
//   - embedding_batch_size{component}
//
// Attach it to any instrumented client as its observer:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "indexer"})
//	client, _ := voyageai.NewClient(cfg)
//	client.WithObserver(m)
//
// Every Generate call then shows up in the counters and histograms.
//
// # Exposing metrics
//
// With Config.Address set, the Fx lifecycle starts a standalone HTTP
// server on that address serving the scrape endpoint. Without it, mount
// Handler() on an existing mux:
//
//	mux.Handle("/metrics", m.Handler())
//
// # Custom metrics
//
// CreateCounter and CreateHistogram register additional application
// metrics in the same registry, so one scrape endpoint covers
// everything.
package metrics
