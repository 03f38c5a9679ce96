package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektorlabs/embeddings/v1/embedding"
)

// Construction errors. Exactly one backend must be supplied.
var (
	ErrNoBackend   = errors.New("bridge: no backend supplied, provide an Embedder or a Function")
	ErrTwoBackends = errors.New("bridge: both backends supplied, provide exactly one")
)

// Config selects the single backend an Adapter delegates to.
type Config struct {
	// Embedder is a third-party embeddings implementation.
	Embedder embedding.Embedder

	// Function is a provider adapter such as *voyageai.Client.
	Function embedding.Function
}

// backend unifies the two backend kinds behind one internal surface, so
// an Adapter holds exactly one reference and an invalid "both set" state
// cannot exist after construction.
type backend interface {
	embedDocuments(ctx context.Context, documents []string) ([][]float32, error)
	embedQuery(ctx context.Context, query string) ([]float32, error)
}

// Adapter presents both embedding surfaces while delegating all work to
// the one backend chosen at construction. It holds no other state and is
// safe for concurrent use if its backend is.
type Adapter struct {
	backend backend
}

var (
	_ embedding.Function = (*Adapter)(nil)
	_ embedding.Embedder = (*Adapter)(nil)
)

// New constructs an Adapter from cfg. It fails when neither or both
// backends are set.
func New(cfg Config) (*Adapter, error) {
	switch {
	case cfg.Embedder == nil && cfg.Function == nil:
		return nil, ErrNoBackend
	case cfg.Embedder != nil && cfg.Function != nil:
		return nil, ErrTwoBackends
	case cfg.Embedder != nil:
		return &Adapter{backend: embedderBackend{e: cfg.Embedder}}, nil
	default:
		return &Adapter{backend: functionBackend{fn: cfg.Function}}, nil
	}
}

// FromEmbedder wraps a third-party embeddings implementation.
func FromEmbedder(e embedding.Embedder) (*Adapter, error) {
	return New(Config{Embedder: e})
}

// FromFunction wraps a provider adapter.
func FromFunction(fn embedding.Function) (*Adapter, error) {
	return New(Config{Function: fn})
}

// EmbedDocuments returns one vector per document.
func (a *Adapter) EmbedDocuments(ctx context.Context, documents []string) ([][]float32, error) {
	return a.backend.embedDocuments(ctx, documents)
}

// EmbedQuery returns the vector for a single query string.
func (a *Adapter) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	return a.backend.embedQuery(ctx, query)
}

// Generate is the batch entry point; it mirrors EmbedDocuments so the
// Adapter also satisfies embedding.Function.
func (a *Adapter) Generate(ctx context.Context, texts []string) ([][]float32, error) {
	return a.backend.embedDocuments(ctx, texts)
}

// embedderBackend delegates both surfaces straight through.
type embedderBackend struct {
	e embedding.Embedder
}

func (b embedderBackend) embedDocuments(ctx context.Context, documents []string) ([][]float32, error) {
	return b.e.EmbedDocuments(ctx, documents)
}

func (b embedderBackend) embedQuery(ctx context.Context, query string) ([]float32, error) {
	return b.e.EmbedQuery(ctx, query)
}

// functionBackend maps the document/query surface onto a batch-only
// Function. A query becomes a one-element batch.
type functionBackend struct {
	fn embedding.Function
}

func (b functionBackend) embedDocuments(ctx context.Context, documents []string) ([][]float32, error) {
	return b.fn.Generate(ctx, documents)
}

func (b functionBackend) embedQuery(ctx context.Context, query string) ([]float32, error) {
	vectors, err := b.fn.Generate(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("bridge: expected 1 vector for query, got %d", len(vectors))
	}
	return vectors[0], nil
}
