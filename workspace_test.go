package ingest

import (
	"context"
	"testing"

	"github.com/talentfold/ingest/core"
)

func TestWorkspaceRoundTrip(t *testing.T) {
	ws, err := OpenWorkspace(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to open workspace: %v", err)
	}
	defer ws.Close()

	ctx := context.Background()

	// Local mode: embeddings come from the deterministic fallback.
	text := "Backend internship building Python services"
	result := ws.EmbeddingsClient().EmbedOne(ctx, text)
	if len(result.Vector) == 0 {
		t.Fatal("Expected a non-empty vector")
	}

	err = ws.VectorRepository().Save(ctx, &core.VectorRecord{
		ChunkID:  "l-1-0",
		Vector:   result.Vector,
		Metadata: map[string]string{"source_type": "listing"},
	})
	if err != nil {
		t.Fatalf("Failed to save vector: %v", err)
	}

	searcher, err := ws.NewSearcher()
	if err != nil {
		t.Fatalf("Failed to create searcher: %v", err)
	}

	matches, err := searcher.FindSimilar(ctx, text, 1, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Record.ChunkID != "l-1-0" {
		t.Fatalf("Expected l-1-0, got %s", matches[0].Record.ChunkID)
	}
}

func TestWorkspaceTableStore(t *testing.T) {
	ws, err := OpenWorkspace(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to open workspace: %v", err)
	}
	defer ws.Close()

	store, err := ws.OpenTableStore()
	if err != nil {
		t.Fatalf("Failed to open table store: %v", err)
	}
	defer store.Close()

	err = store.LoadChunks(context.Background(), []core.Chunk{
		{ChunkID: "l-1-0", SourceType: core.SourceTypeListing, SourceID: "l-1", Text: "x", TokensEstimate: 1},
	})
	if err != nil {
		t.Fatalf("Failed to load chunks: %v", err)
	}
}
