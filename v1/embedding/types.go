package embedding

import (
	"context"
	"fmt"
)

// Function is the batch embedding capability the rest of a host system
// depends on. A Function turns an ordered batch of texts into one vector
// per text, preserving input order.
//
// Implementations must guarantee:
//   - len(result) == len(texts) on success
//   - result[i] is the embedding of texts[i]
type Function interface {
	// Generate computes embeddings for the given texts.
	Generate(ctx context.Context, texts []string) ([][]float32, error)
}

// Embedder is the document/query embedding capability consumed from a
// third-party embeddings implementation. It mirrors the convention used
// by retrieval frameworks: a batch entry point for documents and a single
// entry point for queries.
type Embedder interface {
	// EmbedDocuments computes one embedding per document.
	EmbedDocuments(ctx context.Context, documents []string) ([][]float32, error)

	// EmbedQuery computes the embedding of a single query string.
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// InputType tags a batch so providers can apply input-specific handling
// (some models embed queries and documents differently).
type InputType string

const (
	// InputTypeNone leaves the provider's default behavior in place.
	InputTypeNone InputType = ""

	// InputTypeDocument marks the batch as documents to be indexed.
	InputTypeDocument InputType = "document"

	// InputTypeQuery marks the batch as search queries.
	InputTypeQuery InputType = "query"
)

// Validate returns an error for unknown input types.
func (t InputType) Validate() error {
	switch t {
	case InputTypeNone, InputTypeDocument, InputTypeQuery:
		return nil
	default:
		return fmt.Errorf("embedding: invalid input type %q", string(t))
	}
}
