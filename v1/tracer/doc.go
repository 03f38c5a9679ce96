// Package tracer installs an OTLP-exporting OpenTelemetry tracer
// provider for applications using this library.
//
// Instrumented clients start spans through the global otel tracer, so
// tracing is zero-cost until an application opts in:
//
//	t, err := tracer.NewTracer(tracer.Config{
//	    Endpoint:    "localhost:4318",
//	    ServiceName: "indexer",
//	    Insecure:    true,
//	})
//	defer t.Shutdown(ctx)
//
// or, with Fx, include tracer.FXModule and the provider lifecycle is
// handled automatically.
package tracer
