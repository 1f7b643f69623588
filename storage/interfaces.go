package storage

import (
	"context"

	"github.com/talentfold/ingest/core"
)

// VectorRepository persists chunk vectors and answers filtered top-K
// similarity queries over them.
type VectorRepository interface {
	// Save appends records to the run's collection. It does not
	// deduplicate by chunk ID; callers dedupe upstream or accept
	// duplicate hits in query results.
	Save(ctx context.Context, records ...*core.VectorRecord) error

	// Query returns up to topK stored records, sorted by descending
	// cosine similarity to vector. A record is excluded when any filter
	// key has a value that does not exactly equal the record's metadata
	// value for that key. An empty collection yields an empty result,
	// not an error.
	Query(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]*core.ScoredRecord, error)

	// Close releases the backing store's resources.
	Close() error
}

// TableStore receives the normalized tables for durable relational storage.
type TableStore interface {
	LoadCompanies(ctx context.Context, companies []core.Company) error
	LoadSkills(ctx context.Context, skills []core.SkillRecord) error
	LoadListings(ctx context.Context, listings []core.Listing) error
	LoadResumes(ctx context.Context, resumes []core.Resume) error
	LoadChunks(ctx context.Context, chunks []core.Chunk) error
	Close() error
}
