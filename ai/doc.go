// Package ai defines the embedding provider abstraction used by the
// ingestion pipeline.
//
// The Embedder interface decouples the pipeline from any concrete provider.
// The openai subpackage implements it against OpenAI-compatible APIs; the
// mock subpackage provides a deterministic test double. A nil Embedder is a
// valid configuration: the embeddings client then runs in local-only mode
// and produces deterministic fallback vectors for every input.
package ai
