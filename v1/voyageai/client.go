package voyageai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/vektorlabs/embeddings/v1/embedding"
	"github.com/vektorlabs/embeddings/v1/observability"
)

// Client computes embeddings through the Voyage AI HTTP API.
//
// A Client holds only immutable configuration and is safe for concurrent
// use. It performs exactly one HTTP POST per Generate call: no retries,
// no backoff, no internal batching. Inputs larger than the batch ceiling
// are rejected before any network traffic; callers that need to embed
// more use embedding.GenerateBatched.
type Client struct {
	cfg        *Config
	endpoint   string
	batchSize  int
	httpClient *http.Client
	log        *zap.Logger
	observer   observability.Observer
	tracer     trace.Tracer
}

var _ embedding.Function = (*Client)(nil)

// NewClient validates cfg and constructs a Client.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = DefaultBaseURL
	}

	timeout := cfg.HTTPTimeoutS
	if timeout <= 0 {
		timeout = defaultHTTPTimeoutS
	}

	return &Client{
		cfg:        cfg,
		endpoint:   endpoint,
		batchSize:  cfg.maxBatchSize(),
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		log:        zap.NewNop(),
		tracer:     otel.Tracer("github.com/vektorlabs/embeddings/v1/voyageai"),
	}, nil
}

// WithLogger attaches a logger for debug-level request logging. Errors
// are never logged, only returned.
func (c *Client) WithLogger(log *zap.Logger) *Client {
	if log != nil {
		c.log = log
	}
	return c
}

// WithObserver attaches an observer that receives one observation per
// Generate call.
func (c *Client) WithObserver(obs observability.Observer) *Client {
	c.observer = obs
	return c
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

// MaxBatchSize returns the effective per-call batch ceiling.
func (c *Client) MaxBatchSize() int {
	return c.batchSize
}

// Generate embeds texts in a single API call.
//
// The provider may return items out of input order; Generate sorts them
// by their index field so the result is positionally aligned with texts.
func (c *Client) Generate(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyageai: no texts provided")
	}
	if len(texts) > c.batchSize {
		return nil, fmt.Errorf("%w: got %d texts, limit is %d", ErrBatchTooLarge, len(texts), c.batchSize)
	}

	ctx, span := c.tracer.Start(ctx, "voyageai.generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("embedding.model", c.cfg.Model),
			attribute.Int("embedding.batch_size", len(texts)),
		),
	)
	defer span.End()

	start := time.Now()
	vectors, err := c.embed(ctx, texts)
	duration := time.Since(start)

	c.observeOperation("generate", duration, err, int64(len(texts)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "embeddings request failed")
		return nil, err
	}

	c.log.Debug("voyageai embeddings request",
		zap.String("model", c.cfg.Model),
		zap.Int("texts", len(texts)),
		zap.Duration("duration", duration),
	)

	return vectors, nil
}

func (c *Client) embed(ctx context.Context, texts []string) ([][]float32, error) {
	body, err := json.Marshal(embedRequest{
		Input:      texts,
		Model:      c.cfg.Model,
		Truncation: c.cfg.Truncation,
		InputType:  string(c.cfg.InputType),
	})
	if err != nil {
		return nil, fmt.Errorf("voyageai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("voyageai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voyageai: calling embeddings API: %w", err)
	}
	defer resp.Body.Close()

	var parsed embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("voyageai: calling embeddings API: decode response: %w", err)
	}

	// The error shape carries no data array, only a detail message.
	if parsed.Data == nil {
		if parsed.Detail != "" {
			return nil, fmt.Errorf("voyageai: embeddings API error (status %d): %s", resp.StatusCode, parsed.Detail)
		}
		return nil, fmt.Errorf("voyageai: embeddings API returned status %d with no data", resp.StatusCode)
	}
	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("voyageai: embeddings API returned %d vectors for %d texts", len(parsed.Data), len(texts))
	}

	// Items are keyed by index, not guaranteed to arrive in input order.
	sort.Slice(parsed.Data, func(i, j int) bool {
		return parsed.Data[i].Index < parsed.Data[j].Index
	})

	out := make([][]float32, len(parsed.Data))
	for i, item := range parsed.Data {
		out[i] = item.Embedding
	}

	return out, nil
}

// Close releases idle HTTP connections. Safe to call once the client is
// no longer needed; in-flight calls are unaffected.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
