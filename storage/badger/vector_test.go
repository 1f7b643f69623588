package badger

import (
	"context"
	"math"
	"testing"

	"github.com/talentfold/ingest/core"
)

func newTestRepo(t *testing.T) *VectorRepository {
	t.Helper()
	repo, backend, err := NewMemoryVectorRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestVectorRepositoryQueryRanking(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	records := []*core.VectorRecord{
		{ChunkID: "a-0", Vector: []float32{1, 0, 0}, Metadata: map[string]string{"source_type": "listing"}},
		{ChunkID: "b-0", Vector: []float32{0.9, 0.1, 0}, Metadata: map[string]string{"source_type": "listing"}},
		{ChunkID: "c-0", Vector: []float32{0, 1, 0}, Metadata: map[string]string{"source_type": "resume"}},
		{ChunkID: "d-0", Vector: []float32{-1, 0, 0}, Metadata: map[string]string{"source_type": "listing"}},
	}
	if err := repo.Save(ctx, records...); err != nil {
		t.Fatalf("Failed to save records: %v", err)
	}

	results, err := repo.Query(ctx, []float32{1, 0, 0}, 10, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}

	if results[0].Record.ChunkID != "a-0" {
		t.Fatalf("Expected a-0 first, got %s", results[0].Record.ChunkID)
	}
	if math.Abs(float64(results[0].Score)-1.0) > 1e-6 {
		t.Fatalf("Self-similarity should be 1.0, got %f", results[0].Score)
	}

	// Scores are non-increasing.
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("Scores out of order at %d: %f > %f", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestVectorRepositoryTopK(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		record := &core.VectorRecord{
			ChunkID: core.ChunkID("listing", i),
			Vector:  []float32{float32(i), 1, 0},
		}
		if err := repo.Save(ctx, record); err != nil {
			t.Fatalf("Failed to save record %d: %v", i, err)
		}
	}

	results, err := repo.Query(ctx, []float32{1, 0, 0}, 3, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
}

func TestVectorRepositoryFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.Save(ctx,
		&core.VectorRecord{ChunkID: "l-0", Vector: []float32{1, 0}, Metadata: map[string]string{"source_type": "listing", "city": "Pune"}},
		&core.VectorRecord{ChunkID: "l-1", Vector: []float32{1, 0}, Metadata: map[string]string{"source_type": "listing", "city": "Mumbai"}},
		&core.VectorRecord{ChunkID: "r-0", Vector: []float32{1, 0}, Metadata: map[string]string{"source_type": "resume", "city": "Pune"}},
	)
	if err != nil {
		t.Fatalf("Failed to save records: %v", err)
	}

	results, err := repo.Query(ctx, []float32{1, 0}, 10, map[string]string{"source_type": "listing", "city": "Pune"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Record.ChunkID != "l-0" {
		t.Fatalf("Expected l-0, got %s", results[0].Record.ChunkID)
	}

	// A filter key absent from metadata excludes the record.
	results, err = repo.Query(ctx, []float32{1, 0}, 10, map[string]string{"state": "Goa"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no results, got %d", len(results))
	}
}

func TestVectorRepositoryEmptyCollection(t *testing.T) {
	repo := newTestRepo(t)

	results, err := repo.Query(context.Background(), []float32{1, 0, 0}, 5, nil)
	if err != nil {
		t.Fatalf("Query on empty collection failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected empty result, got %d", len(results))
	}
}

func TestVectorRepositoryZeroVector(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.Save(ctx, &core.VectorRecord{ChunkID: "z-0", Vector: []float32{0, 0, 0}})
	if err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	results, err := repo.Query(ctx, []float32{1, 0, 0}, 5, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Score != 0 {
		t.Fatalf("Zero vector should score 0, got %f", results[0].Score)
	}
}

func TestVectorRepositoryNoDedup(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := &core.VectorRecord{ChunkID: "dup-0", Vector: []float32{1, 0}}
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	results, err := repo.Query(ctx, []float32{1, 0}, 10, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected duplicates preserved, got %d results", len(results))
	}
}

func TestVectorRepositorySaveFullRun(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// A run's worth of records in one Save call. At 256 floats per vector
	// this is well past what a single transaction can commit, so the save
	// must span multiple commits.
	const n = 20000
	records := make([]*core.VectorRecord, n)
	for i := range records {
		vector := make([]float32, 256)
		vector[i%256] = 1
		records[i] = &core.VectorRecord{
			ChunkID:  core.ChunkID("l-1", i),
			Vector:   vector,
			Metadata: map[string]string{"source_type": "listing"},
		}
	}

	if err := repo.Save(ctx, records...); err != nil {
		t.Fatalf("Full-run save failed: %v", err)
	}

	results, err := repo.Query(ctx, records[0].Vector, n+1, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != n {
		t.Fatalf("Expected %d records persisted, got %d", n, len(results))
	}
}

func TestVectorRepositoryInvalidTopK(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.Query(context.Background(), []float32{1}, 0, nil); err == nil {
		t.Fatal("Expected error for topK = 0")
	}
}
