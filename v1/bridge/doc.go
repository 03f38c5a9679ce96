// Package bridge adapts between the two embedding surfaces defined in
// the embedding package.
//
// An [Adapter] wraps exactly one backend, either:
//
//   - an embedding.Embedder, a third-party embeddings implementation
//     with EmbedDocuments / EmbedQuery, or
//   - an embedding.Function, a batch-only provider adapter such as
//     *voyageai.Client,
//
// and exposes both surfaces itself. Application code can then depend on
// whichever surface fits and swap backends without changes:
//
//	adapter, err := bridge.FromFunction(voyageClient)
//	// or: adapter, err := bridge.FromEmbedder(thirdParty)
//
//	vecs, err := adapter.EmbedDocuments(ctx, docs)
//	vec, err := adapter.EmbedQuery(ctx, "what is a capybara?")
//
// Construction requires exactly one backend; New returns ErrNoBackend or
// ErrTwoBackends otherwise. When the backend is a Function, EmbedQuery
// wraps the query in a one-element batch and unwraps the single result.
//
// The adapter adds no batching, retries, caching, or state of its own.
package bridge
