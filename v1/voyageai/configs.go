package voyageai

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vektorlabs/embeddings/v1/embedding"
)

// DefaultBaseURL is the public Voyage AI embeddings endpoint.
const DefaultBaseURL = "https://api.voyageai.com/v1/embeddings"

// Known model names with a non-default batch ceiling.
const (
	ModelVoyage2  = "voyage-2"
	ModelVoyage02 = "voyage-02"
)

const (
	// defaultMaxBatchSize is the per-call ceiling for current models.
	defaultMaxBatchSize = 7

	// legacyMaxBatchSize applies to the voyage-2 / voyage-02 models,
	// which accept larger batches.
	legacyMaxBatchSize = 72

	defaultHTTPTimeoutS = 30
)

// Config holds everything a Client needs. It is fixed at construction;
// the Client never mutates it afterwards.
type Config struct {
	// APIKey authenticates against the Voyage AI API. Required.
	APIKey string

	// Model selects the embedding model, e.g. "voyage-2". Required.
	Model string

	// BaseURL overrides the embeddings endpoint. Defaults to
	// DefaultBaseURL. Useful for proxies and tests.
	BaseURL string

	// Truncation asks the provider to truncate over-long inputs instead
	// of rejecting them.
	Truncation bool

	// InputType optionally tags batches as documents or queries.
	InputType embedding.InputType

	// MaxBatchSize caps the number of texts per Generate call. Zero
	// selects the model's documented ceiling.
	MaxBatchSize int

	// HTTPTimeoutS bounds each HTTP request in seconds (default 30).
	HTTPTimeoutS int
}

// NewConfig reads configuration from environment variables:
//
//	VOYAGEAI_API_KEY               (required)
//	VOYAGEAI_MODEL                 (required)
//	VOYAGEAI_BASE_URL              (optional)
//	VOYAGEAI_TRUNCATION            (optional, "true"/"false")
//	VOYAGEAI_INPUT_TYPE            (optional, "document" or "query")
//	VOYAGEAI_MAX_BATCH_SIZE        (optional, positive integer)
//	VOYAGEAI_HTTP_TIMEOUT_SECONDS  (optional, default 30)
func NewConfig() *Config {
	cfg := &Config{
		APIKey:       os.Getenv("VOYAGEAI_API_KEY"),
		Model:        os.Getenv("VOYAGEAI_MODEL"),
		BaseURL:      os.Getenv("VOYAGEAI_BASE_URL"),
		InputType:    embedding.InputType(os.Getenv("VOYAGEAI_INPUT_TYPE")),
		HTTPTimeoutS: defaultHTTPTimeoutS,
	}

	if v := os.Getenv("VOYAGEAI_TRUNCATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Truncation = b
		}
	}
	if v := os.Getenv("VOYAGEAI_MAX_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxBatchSize = n
		}
	}
	if v := os.Getenv("VOYAGEAI_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutS = n
		}
	}

	return cfg
}

// DefaultConfig returns a config for the given key and model with all
// defaults applied.
func DefaultConfig(apiKey, model string) *Config {
	return &Config{
		APIKey:       apiKey,
		Model:        model,
		HTTPTimeoutS: defaultHTTPTimeoutS,
	}
}

// Builder-style helpers (optional, ergonomic)

func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

func (c *Config) WithTruncation(enabled bool) *Config {
	c.Truncation = enabled
	return c
}

func (c *Config) WithInputType(t embedding.InputType) *Config {
	c.InputType = t
	return c
}

func (c *Config) WithMaxBatchSize(n int) *Config {
	c.MaxBatchSize = n
	return c
}

// Validate ensures required fields are present and consistent.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("voyageai: missing VOYAGEAI_API_KEY")
	}
	if c.Model == "" {
		return fmt.Errorf("voyageai: missing VOYAGEAI_MODEL")
	}
	if c.MaxBatchSize < 0 {
		return fmt.Errorf("voyageai: max batch size must not be negative, got %d", c.MaxBatchSize)
	}
	if err := c.InputType.Validate(); err != nil {
		return fmt.Errorf("voyageai: %w", err)
	}
	return nil
}

// maxBatchSize resolves the effective per-call ceiling: an explicit
// override wins, otherwise the model's documented limit applies.
func (c *Config) maxBatchSize() int {
	if c.MaxBatchSize > 0 {
		return c.MaxBatchSize
	}
	return DefaultBatchSizeForModel(c.Model)
}

// DefaultBatchSizeForModel returns the documented per-call batch ceiling
// for a model. The voyage-2 and voyage-02 models accept 72 inputs per
// call; everything else is limited to 7.
func DefaultBatchSizeForModel(model string) int {
	switch model {
	case ModelVoyage2, ModelVoyage02:
		return legacyMaxBatchSize
	default:
		return defaultMaxBatchSize
	}
}
