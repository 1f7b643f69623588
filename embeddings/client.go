package embeddings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentfold/ingest/ai"
	"github.com/talentfold/ingest/core"
)

const (
	// DefaultBatchSize is the number of texts sent per provider request.
	DefaultBatchSize = 64
	// DefaultMaxRetries is the attempt budget per batch.
	DefaultMaxRetries = 3
	// DefaultRetryBaseDelay is the starting backoff delay, doubled per retry.
	DefaultRetryBaseDelay = 500 * time.Millisecond

	// FallbackModel tags results produced by the deterministic fallback.
	FallbackModel = "local-fallback"
)

// Client turns text batches into embedding vectors. A nil embedder puts the
// client in local-only mode where every text gets a fallback vector.
type Client struct {
	embedder    ai.Embedder
	model       string
	batchSize   int
	maxRetries  int
	baseDelay   time.Duration
	fallbackDim int
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBatchSize sets the number of texts per provider request.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.batchSize = size
		}
	}
}

// WithMaxRetries sets the attempt budget per batch.
// Default is DefaultMaxRetries.
func WithMaxRetries(max int) Option {
	return func(c *Client) {
		if max > 0 {
			c.maxRetries = max
		}
	}
}

// WithRetryBaseDelay sets the starting backoff delay.
// Default is DefaultRetryBaseDelay.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay > 0 {
			c.baseDelay = delay
		}
	}
}

// WithFallbackDim sets the fallback vector length. Configure it to the
// provider model's dimensionality so fallback and provider vectors stay
// comparable within a run. Default is PseudoVectorDim.
func WithFallbackDim(dim int) Option {
	return func(c *Client) {
		if dim > 0 {
			c.fallbackDim = dim
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates an embeddings client. embedder may be nil for local-only
// mode; model tags successful provider results.
func NewClient(embedder ai.Embedder, model string, opts ...Option) *Client {
	c := &Client{
		embedder:    embedder,
		model:       model,
		batchSize:   DefaultBatchSize,
		maxRetries:  DefaultMaxRetries,
		baseDelay:   DefaultRetryBaseDelay,
		fallbackDim: PseudoVectorDim,
		logger:      slog.Default().With("component", "embeddings"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Embed converts texts into vectors, one result per input in the same order.
// It never returns an error: batches that exhaust their retry budget degrade
// to deterministic fallback vectors, and the result slice always has
// len(texts) entries. Batches are processed sequentially to keep provider
// rate limits predictable and result ordering trivially stable.
func (c *Client) Embed(ctx context.Context, texts []string) []core.EmbeddingResult {
	results := make([]core.EmbeddingResult, 0, len(texts))

	if c.embedder == nil {
		for _, text := range texts {
			results = append(results, c.fallback(text))
		}
		return results
	}

	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		var vectors [][]float32
		err := RetryWithBackoff(ctx, func() error {
			var embedErr error
			vectors, embedErr = c.embedder.EmbedTexts(ctx, batch)
			if embedErr != nil {
				return embedErr
			}
			if len(vectors) != len(batch) {
				return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(vectors))
			}
			return nil
		}, c.maxRetries, c.baseDelay)

		if err != nil {
			// Partial-batch failure never blocks other batches.
			c.logger.Warn("embedding batch failed, falling back to pseudo vectors",
				"batchStart", start, "batchSize", len(batch), "err", err)
			for _, text := range batch {
				results = append(results, c.fallback(text))
			}
			continue
		}

		for _, vector := range vectors {
			results = append(results, core.EmbeddingResult{Vector: vector, Model: c.model})
		}
	}

	return results
}

// EmbedOne embeds a single text. Like Embed, it never fails.
func (c *Client) EmbedOne(ctx context.Context, text string) core.EmbeddingResult {
	return c.Embed(ctx, []string{text})[0]
}

func (c *Client) fallback(text string) core.EmbeddingResult {
	return core.EmbeddingResult{
		Vector: PseudoVector(text, c.fallbackDim),
		Model:  FallbackModel,
	}
}
