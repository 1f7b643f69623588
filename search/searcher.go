package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/embeddings"
	"github.com/talentfold/ingest/storage"
)

// Searcher embeds query text and ranks stored chunks against it.
type Searcher struct {
	vectors storage.VectorRepository
	client  *embeddings.Client
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "search")
		return nil
	}
}

// NewSearcher creates a new searcher over the given vector collection.
func NewSearcher(vectors storage.VectorRepository, client *embeddings.Client, opts ...Option) (*Searcher, error) {
	if vectors == nil {
		return nil, ErrVectorRepositoryRequired
	}
	if client == nil {
		return nil, ErrEmbeddingsClientRequired
	}

	s := &Searcher{
		vectors: vectors,
		client:  client,
		logger:  slog.Default().With("component", "search"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FindSimilar returns up to topK chunks ranked by similarity to query.
// Filter keys must exactly match chunk metadata values; pass nil for an
// unfiltered search. Embedding the query never fails (offline runs fall
// back to the deterministic vector), so errors only come from storage.
func (s *Searcher) FindSimilar(ctx context.Context, query string, topK int, filter map[string]string) ([]*core.ScoredRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	result := s.client.EmbedOne(ctx, query)
	matches, err := s.vectors.Query(ctx, result.Vector, topK, filter)
	if err != nil {
		s.logger.Error("error querying vector collection", "err", err)
		return nil, err
	}

	s.logger.Debug("query complete", "hits", len(matches), "model", result.Model)
	return matches, nil
}
