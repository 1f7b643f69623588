package ingest

import (
	"path/filepath"

	"github.com/talentfold/ingest/ai"
)

// Config holds the filesystem layout and credentials for a run. All paths
// derive from DataDir so a run is fully contained in one directory tree.
type Config struct {
	// DataDir is the root of the run's working tree.
	// Default: "data".
	DataDir string

	// AI configures the embedding provider. Nil means local-only mode.
	AI *ai.Config

	// KaggleUsername and KaggleKey authenticate dataset downloads.
	// Without them every dataset falls back to its bundled sample.
	KaggleUsername string
	KaggleKey      string
}

// DefaultConfig returns a Config rooted at "data" in local-only mode.
func DefaultConfig() Config {
	return Config{DataDir: "data"}
}

func (c Config) root() string {
	if c.DataDir == "" {
		return "data"
	}
	return c.DataDir
}

// RawDir holds the downloaded (or sample) dataset files, one subdirectory
// per dataset alias.
func (c Config) RawDir() string { return filepath.Join(c.root(), "raw") }

// SamplesDir holds the bundled offline sample files.
func (c Config) SamplesDir() string { return filepath.Join(c.root(), "samples") }

// CleanDir holds the cleaned-table CSV artifacts.
func (c Config) CleanDir() string { return filepath.Join(c.root(), "clean") }

// VectorDir holds the vector collection.
func (c Config) VectorDir() string { return filepath.Join(c.root(), "vectorstore") }

// DBPath is the SQLite database file.
func (c Config) DBPath() string { return filepath.Join(c.root(), "db.sqlite") }

// ReportPath is the report.json location.
func (c Config) ReportPath() string { return filepath.Join(c.root(), "reports", "report.json") }

// StatePath carries clean-step results to the report step between
// invocations.
func (c Config) StatePath() string { return filepath.Join(c.root(), "reports", "state.json") }
