// Copyright 2025 Talentfold
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ingest wires the normalization-to-retrieval pipeline together:
// dataset acquisition, cleaning, chunking, embedding, vector storage, and
// similarity search over the result.
package ingest

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/talentfold/ingest/ai"
	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/ai/openai"
	"github.com/talentfold/ingest/dataset"
	"github.com/talentfold/ingest/embeddings"
	"github.com/talentfold/ingest/ingestion"
	"github.com/talentfold/ingest/search"
	"github.com/talentfold/ingest/storage"
	"github.com/talentfold/ingest/storage/badger"
	"github.com/talentfold/ingest/storage/sqlite"
)

// Workspace owns the shared resources of a run: the vector collection
// backend and the embeddings client. The step-specific pieces (pipeline,
// downloader, searcher, table store) are constructed on demand.
type Workspace struct {
	config  Config
	backend *badger.Backend
	vectors *badger.VectorRepository
	client  *embeddings.Client
	logger  *slog.Logger
}

// OpenWorkspace opens the vector collection under the config's data
// directory and builds the embeddings client. A nil or local AI config
// produces a client that only emits deterministic fallback vectors, so an
// offline run still works end to end.
func OpenWorkspace(config Config) (*Workspace, error) {
	aiConfig := config.AI
	if aiConfig == nil {
		aiConfig = ai.NewConfig(ai.WithProvider(ai.ProviderLocal))
	}
	if err := aiConfig.Validate(); err != nil {
		return nil, err
	}

	var embedder ai.Embedder
	if aiConfig.Provider != ai.ProviderLocal {
		var err error
		embedder, err = openai.NewEmbedder(aiConfig)
		if err != nil {
			return nil, err
		}
	}

	backend, err := badger.OpenBackend(config.VectorDir(), false)
	if err != nil {
		return nil, err
	}
	vectors, err := badger.NewVectorRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Workspace{
		config:  config,
		backend: backend,
		vectors: vectors,
		client:  embeddings.NewClient(embedder, aiConfig.Model),
		logger:  slog.Default(),
	}, nil
}

// Close releases the vector collection.
func (w *Workspace) Close() error {
	if err := w.vectors.Close(); err != nil {
		w.logger.Error("error closing vector repository", "err", err)
	}
	if err := w.backend.Close(); err != nil {
		w.logger.Error("error closing storage backend", "err", err)
		return err
	}
	return nil
}

// Config returns the workspace configuration.
func (w *Workspace) Config() Config {
	return w.config
}

// VectorRepository exposes the run's vector collection.
func (w *Workspace) VectorRepository() storage.VectorRepository {
	return w.vectors
}

// EmbeddingsClient exposes the run's embeddings client.
func (w *Workspace) EmbeddingsClient() *embeddings.Client {
	return w.client
}

// EmbedChunks embeds every chunk text and saves the resulting vector
// records. Chunks whose embedding fell back to the deterministic vector are
// saved like any other; the collection never ends up partially populated
// because of provider errors.
func (w *Workspace) EmbedChunks(ctx context.Context, chunks []core.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Text
	}
	results := w.client.Embed(ctx, texts)

	records := make([]*core.VectorRecord, len(chunks))
	for i := range chunks {
		records[i] = &core.VectorRecord{
			ChunkID:  chunks[i].ChunkID,
			Vector:   results[i].Vector,
			Metadata: chunkMetadata(chunks[i]),
		}
	}
	return w.vectors.Save(ctx, records...)
}

// chunkMetadata builds the filterable metadata for a chunk's vector record.
// Empty location fields are omitted so an exact-match filter on them never
// matches an unknown value.
func chunkMetadata(chunk core.Chunk) map[string]string {
	metadata := map[string]string{
		"source_type": string(chunk.SourceType),
		"source_id":   chunk.SourceID,
		"chunk_index": strconv.Itoa(chunk.ChunkIndex),
		"source":      chunk.Source,
	}
	if chunk.LocationCity != "" {
		metadata["city"] = chunk.LocationCity
	}
	if chunk.LocationState != "" {
		metadata["state"] = chunk.LocationState
	}
	if chunk.LocationCountry != "" {
		metadata["country"] = chunk.LocationCountry
	}
	if chunk.Mode != "" {
		metadata["mode"] = chunk.Mode
	}
	if chunk.PostedDate != "" {
		metadata["posted_date"] = chunk.PostedDate
	}
	return metadata
}

// NewDownloader builds a dataset downloader using the configured kaggle
// credentials.
func (w *Workspace) NewDownloader() *dataset.Downloader {
	return dataset.NewDownloader(w.config.RawDir(), w.config.SamplesDir(),
		dataset.WithCredentials(w.config.KaggleUsername, w.config.KaggleKey))
}

// NewPipeline builds a clean-step pipeline.
func (w *Workspace) NewPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(opts...)
}

// NewSearcher builds a searcher over the workspace's vector collection.
func (w *Workspace) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(w.vectors, w.client, opts...)
}

// OpenTableStore opens the run's SQLite database.
func (w *Workspace) OpenTableStore() (storage.TableStore, error) {
	return sqlite.NewStore(w.config.DBPath())
}
