package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule wires the logger into Fx.
//
// It provides:
//   - Config       (NewConfig, from environment variables)
//   - *zap.Logger  (NewLogger)
//   - Lifecycle hook flushing buffered entries on shutdown
var FXModule = fx.Module(
	"logger",

	fx.Provide(
		NewConfig, // -> Config
		NewLogger, // -> *zap.Logger
	),

	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes the logger on application shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on stderr can fail on some platforms; entries are
			// unbuffered there anyway.
			_ = log.Sync()
			return nil
		},
	})
}
