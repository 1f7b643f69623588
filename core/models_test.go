package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "Software Engineering Intern at a growing startup, hybrid, Bengaluru",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestChunkID(t *testing.T) {
	tests := []struct {
		name     string
		sourceID string
		index    int
		want     string
	}{
		{
			name:     "listing source",
			sourceID: "listing-42",
			index:    0,
			want:     "listing-42-0",
		},
		{
			name:     "resume source",
			sourceID: "resume-7",
			index:    3,
			want:     "resume-7-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChunkID(tt.sourceID, tt.index); got != tt.want {
				t.Errorf("ChunkID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListing_DedupKey(t *testing.T) {
	withURL := &Listing{
		Title:          "Backend Intern",
		CompanyName:    "Acme",
		ApplicationURL: "https://example.com/jobs/1",
	}
	sameURL := &Listing{
		Title:          "Backend Intern (Remote)",
		CompanyName:    "Acme Corp",
		ApplicationURL: "https://example.com/jobs/1",
	}
	if withURL.DedupKey() != sameURL.DedupKey() {
		t.Errorf("listings with the same application URL should share a dedup key")
	}

	noURL := &Listing{
		Title:        "Backend Intern",
		CompanyName:  "Acme",
		LocationCity: "Pune",
	}
	sameFields := &Listing{
		Title:        "Backend Intern",
		CompanyName:  "Acme",
		LocationCity: "Pune",
	}
	if noURL.DedupKey() != sameFields.DedupKey() {
		t.Errorf("listings with identical identity fields should share a dedup key")
	}

	otherCity := &Listing{
		Title:        "Backend Intern",
		CompanyName:  "Acme",
		LocationCity: "Mumbai",
	}
	if noURL.DedupKey() == otherCity.DedupKey() {
		t.Errorf("listings in different cities should not share a dedup key")
	}
}
