// Package embedding defines the shared contracts for text embedding
// functions.
//
// # Overview
//
// Two small interfaces cover the two conventions in use:
//
//   - [Function] is the provider-facing contract: one batch call,
//     Generate(ctx, texts), returning one vector per text in input order.
//     Remote adapters such as the voyageai package implement it.
//
//   - [Embedder] is the framework-facing contract: EmbedDocuments for
//     indexing batches and EmbedQuery for single search queries. Callers
//     integrating a third-party embeddings implementation provide this.
//
// The bridge package adapts between the two, so application code can
// depend on either surface and not care which backend is behind it.
//
// # Invariants
//
// Every Function implementation guarantees that a successful Generate
// returns exactly one vector per input text, positionally aligned with
// the input. Callers never need to re-match vectors to texts.
//
// # Batching helpers
//
// Providers enforce a per-call batch-size ceiling and never split inputs
// themselves. [GenerateBatched] and [GenerateParallel] are opt-in helpers
// for embedding inputs larger than the ceiling:
//
//	vectors, err := embedding.GenerateBatched(ctx, fn, texts, client.MaxBatchSize())
//
// GenerateParallel bounds its concurrency with an errgroup and preserves
// input ordering by writing each chunk's vectors into place.
package embedding
