package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule wires the metrics system into Fx.
//
// It provides:
//   - Config          (NewConfig, from environment variables)
//   - *Metrics        (NewMetrics)
//   - Lifecycle hook  (RegisterMetricsLifecycle)
//
// A *zap.Logger must be available in the container (see the logger
// package's FXModule).
var FXModule = fx.Module(
	"metrics",

	fx.Provide(
		NewConfig,  // -> Config
		NewMetrics, // -> *Metrics
	),

	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the scrape server on startup when an
// address is configured, and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if m.Server.Addr == "" {
				return nil
			}
			go func() {
				log.Info("starting metrics server", zap.String("address", m.Server.Addr))
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("metrics server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
