// Package ingestion turns raw dataset rows into the normalized tables and
// embedding-ready chunks of a run.
//
// Raw rows arrive as string-keyed mappings with inconsistent column names
// across datasets; each logical field is resolved through an ordered list
// of candidate keys, first non-empty wins. Parse ambiguities (locations,
// stipends) never fail a row; they are counted and surfaced in the run
// stats for reporting.
//
// Chunk building fans out over a worker pool; everything else is
// synchronous.
package ingestion
