// Package voyageai implements an embedding.Function backed by the Voyage
// AI embeddings API.
//
// # Overview
//
// A client is constructed from a Config:
//
//	cfg := voyageai.DefaultConfig(apiKey, "voyage-2")
//	client, err := voyageai.NewClient(cfg)
//
// and embeds a batch of texts with a single HTTP POST:
//
//	vectors, err := client.Generate(ctx, []string{"a", "b"})
//
// On success, vectors[i] is the embedding of texts[i]. The provider tags
// each returned item with the index of its input text and may return
// items out of order; the client sorts by that index before projecting
// the embeddings, so callers always see input ordering.
//
// # Batch ceiling
//
// The API caps the number of inputs per call. The cap defaults to the
// model's documented limit (72 for voyage-2 and voyage-02, 7 otherwise)
// and can be overridden via Config.MaxBatchSize. Oversized batches are
// rejected with ErrBatchTooLarge before any network call. To embed more
// texts than the ceiling, split the input:
//
//	vectors, err := embedding.GenerateBatched(ctx, client, texts, client.MaxBatchSize())
//
// # Failure semantics
//
// Every call is a single attempt. There are no retries, no backoff, and
// no internal error recovery; the configured HTTP timeout and the
// caller's context bound each request. Provider errors surface with the
// provider's detail message, transport and decode failures are wrapped
// with a "voyageai:" prefix, and nothing is logged or swallowed
// internally.
//
// # Configuration
//
// Configuration is sourced either programmatically (DefaultConfig plus
// the With* helpers) or from environment variables via NewConfig:
//
//   - VOYAGEAI_API_KEY (required)
//   - VOYAGEAI_MODEL (required)
//   - VOYAGEAI_BASE_URL, VOYAGEAI_TRUNCATION, VOYAGEAI_INPUT_TYPE,
//     VOYAGEAI_MAX_BATCH_SIZE, VOYAGEAI_HTTP_TIMEOUT_SECONDS (optional)
//
// All fields are fixed at construction; a Client is safe for concurrent
// use and performs no coordination between concurrent calls.
//
// # Observability
//
// Each Generate call opens an OpenTelemetry client span and, when an
// observer is attached via WithObserver, emits one operation observation
// with the call's duration, batch size, and error. WithLogger enables
// debug-level request logging; errors are returned, never logged.
//
// # Dependency Injection (Fx)
//
// FXModule provides *Config (from the environment) and *Client, and
// closes the client on shutdown:
//
//	app := fx.New(
//	    voyageai.FXModule,
//	    fx.Invoke(func(c *voyageai.Client) {
//	        // use c
//	    }),
//	)
package voyageai
