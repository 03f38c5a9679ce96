package voyageai

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the Voyage AI adapter into Fx.
//
// It provides:
//   - *Config        (NewConfig, from environment variables)
//   - *Client        (NewClient)
//   - Lifecycle hook (RegisterClientLifecycle)
var FXModule = fx.Module(
	"voyageai",

	fx.Provide(
		NewConfig, // -> *Config
		NewClient, // -> *Client
	),

	fx.Invoke(RegisterClientLifecycle),
)

// RegisterClientLifecycle releases the client's HTTP resources on
// application shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
