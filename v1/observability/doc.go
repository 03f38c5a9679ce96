// Package observability defines the observer contract instrumented
// clients emit into.
//
// Clients in this library (e.g. the voyageai adapter) accept an optional
// [Observer] via their WithObserver method and emit one
// [OperationContext] per completed operation. The metrics package
// provides a Prometheus-backed implementation; tests typically use a
// small recording implementation.
//
// Keeping the contract here, separate from any metrics backend, lets
// client packages stay free of Prometheus imports.
package observability
