package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from entity content.
// It is used for deduplication keys, not for storage sequencing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SourceType identifies where a chunk's text came from.
type SourceType string

const (
	// SourceTypeListing marks chunks cut from a job listing description.
	SourceTypeListing SourceType = "listing"
	// SourceTypeResume marks chunks cut from a resume's raw text.
	SourceTypeResume SourceType = "resume"
)

// WorkMode classifies how a position is performed.
type WorkMode string

const (
	// WorkModeOnline is fully remote work.
	WorkModeOnline WorkMode = "online"
	// WorkModeOnsite is fully in-person work.
	WorkModeOnsite WorkMode = "onsite"
	// WorkModeHybrid is a mix of remote and in-person work.
	WorkModeHybrid WorkMode = "hybrid"
)

// SkillRecord is one entry of the canonical skill catalog for an ingestion
// run. Immutable once loaded into a SkillMapper.
type SkillRecord struct {
	SkillID       string
	SkillName     string
	SkillCategory string
	Aliases       []string
}

// SkillMapping is the result of resolving a raw skill mention against the
// catalog. Matched is nil when no tier cleared its threshold. Not persisted.
type SkillMapping struct {
	Input   string
	Matched *SkillRecord
	Score   float64
}

// ParsedLocation is the output of the location heuristics. Empty string
// fields mean "unknown". When Mode is WorkModeOnline the place fields are
// always empty: remote overrides any place mentions.
type ParsedLocation struct {
	City    string
	State   string
	Country string
	Mode    WorkMode
}

// ParsedStipend is a normalized monthly INR range. Nil bounds mean the value
// could not be derived. Ambiguous is set when the input names a foreign
// currency or yields no parseable number; Ambiguous implies both bounds are
// nil. A single parseable figure populates both bounds.
type ParsedStipend struct {
	Min       *int
	Max       *int
	Ambiguous bool
}

// Chunk is a bounded slice of source text with retrieval metadata. It is the
// unit of embedding and similarity search. Chunks are immutable after
// creation and live until the next ingestion run overwrites them.
type Chunk struct {
	ChunkID         string
	SourceType      SourceType
	SourceID        string
	ChunkIndex      int
	Text            string
	TokensEstimate  int
	TopSkills       []string
	LocationCity    string
	LocationState   string
	LocationCountry string
	Mode            string
	PostedDate      string
	Source          string
}

// ChunkID builds the canonical chunk identifier for a source and index.
// Unique within a run as long as source IDs are.
func ChunkID(sourceID string, index int) string {
	return fmt.Sprintf("%s-%d", sourceID, index)
}

// EmbeddingResult is a fixed-length vector plus the tag of the model that
// produced it. Within a run every vector has the same length, whether it came
// from the remote provider or the deterministic fallback.
type EmbeddingResult struct {
	Vector []float32
	Model  string
}

// VectorRecord is the persisted unit of the vector collection: a chunk's
// vector plus the metadata needed for filtered queries. The store does not
// deduplicate by ChunkID; callers must avoid re-saving a chunk within a run.
type VectorRecord struct {
	ChunkID  string
	Vector   []float32
	Metadata map[string]string
}

// ScoredRecord pairs a stored record with its similarity to a query vector.
type ScoredRecord struct {
	Record *VectorRecord
	Score  float32
}

// Listing is a normalized job/internship listing row.
type Listing struct {
	ListingID       string
	Title           string
	CompanyID       string
	CompanyName     string
	LocationCity    string
	LocationState   string
	LocationCountry string
	Skills          []string
	StipendMinINR   *int
	StipendMaxINR   *int
	DurationWeeks   *int
	Mode            string
	Category        string
	Description     string
	ApplicationURL  string
	PostedDate      string
	Source          string
}

// DedupKey returns the identity key used to drop duplicate listings: the
// application URL when present, otherwise a content hash of the fields that
// make two listings the same posting.
func (l *Listing) DedupKey() ID {
	if l.ApplicationURL != "" {
		return IDFromContent(l.ApplicationURL)
	}
	return IDFromContent(l.Title + "|" + l.CompanyName + "|" + l.LocationCity + "|" + l.LocationState)
}

// Company is a normalized company row.
type Company struct {
	CompanyID           string
	CompanyName         string
	Industry            string
	HeadquartersCity    string
	HeadquartersCountry string
	CompanyURL          string
	SizeBucket          string
	Source              string
}

// Resume is a normalized resume/profile row.
type Resume struct {
	UserID          string
	Name            string
	Education       []string
	ExperienceYears *float64
	Skills          []string
	Projects        string
	RawResumeText   string
	Source          string
}
