// Package embeddings converts text batches into fixed-length vectors.
//
// The Client wraps an ai.Embedder with batching, retry with exponential
// backoff, and a deterministic hash-derived fallback. Embed never fails:
// when the remote provider is unconfigured or a batch exhausts its retry
// budget, the affected texts degrade to fallback vectors tagged with a
// distinct model identifier, so a run always produces a full-length result
// slice.
package embeddings
