package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires distributed tracing into Fx.
//
// It provides:
//   - Config          (NewConfig, from environment variables)
//   - *Tracer         (NewTracer, installs the global provider)
//   - Lifecycle hook  (RegisterTracerLifecycle)
var FXModule = fx.Module(
	"tracer",

	fx.Provide(
		NewConfig, // -> Config
		NewTracer, // -> *Tracer
	),

	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes and shuts the provider down on
// application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracer.Shutdown(ctx)
		},
	})
}
