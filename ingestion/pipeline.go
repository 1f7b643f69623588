package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/talentfold/ingest/chunks"
	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/skills"
)

// Pipeline orchestrates the clean step of a run: normalize the raw tables,
// dedupe listings, and fan chunk building out over a worker pool.
type Pipeline struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for chunk building.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "ingestion")
		return nil
	}
}

// NewPipeline creates a new clean pipeline.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		pool:   pool,
		logger: slog.Default().With("component", "ingestion"),
	}
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// Release releases the worker pool. The pipeline should not be used after
// calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// RawTables holds the raw rows per dataset type, as read from disk.
type RawTables struct {
	Listings  []map[string]string
	Skills    []map[string]string
	Companies []map[string]string
	Resumes   []map[string]string
}

// DatasetStats summarizes one dataset's contribution to the run.
type DatasetStats struct {
	RowsRead     int
	RowsIngested int
	Duplicates   int
}

// Result is the output of the clean step.
type Result struct {
	Skills         []core.SkillRecord
	Companies      []core.Company
	Resumes        []core.Resume
	Listings       []core.Listing
	Chunks         []core.Chunk
	MappingSamples []string
	Failures       ParseFailures
	Datasets       map[string]DatasetStats
}

// Clean normalizes the raw tables and builds the chunk table. Parse
// ambiguities are absorbed into Result.Failures; only structural problems
// (a missing skill catalog) surface as errors.
func (p *Pipeline) Clean(ctx context.Context, raw RawTables) (*Result, error) {
	catalog := NormalizeSkills(raw.Skills)
	mapper := skills.NewMapper(catalog)

	listingResult, err := NormalizeListings(raw.Listings, mapper)
	if err != nil {
		return nil, err
	}
	deduped, duplicates := DeduplicateListings(listingResult.Listings)
	if duplicates > 0 {
		p.logger.Info("dropped duplicate listings", "count", duplicates)
	}

	companies := NormalizeCompanies(raw.Companies)
	resumes := NormalizeResumes(raw.Resumes)

	result := &Result{
		Skills:         catalog,
		Companies:      companies,
		Resumes:        resumes,
		Listings:       deduped,
		Chunks:         p.buildChunks(deduped, resumes, mapper),
		MappingSamples: listingResult.MappingSamples,
		Failures:       listingResult.Failures,
		Datasets: map[string]DatasetStats{
			"listings":  {RowsRead: len(raw.Listings), RowsIngested: len(deduped), Duplicates: duplicates},
			"skills":    {RowsRead: len(raw.Skills), RowsIngested: len(catalog)},
			"companies": {RowsRead: len(raw.Companies), RowsIngested: len(companies)},
			"resumes":   {RowsRead: len(raw.Resumes), RowsIngested: len(resumes)},
		},
	}

	p.logger.Info("clean step complete",
		"listings", len(deduped),
		"resumes", len(resumes),
		"chunks", len(result.Chunks))
	return result, nil
}

// buildChunks chunks every listing description and resume text on the
// worker pool. Output order is deterministic: listings in input order, then
// resumes, regardless of worker scheduling.
func (p *Pipeline) buildChunks(listings []core.Listing, resumes []core.Resume, mapper *skills.Mapper) []core.Chunk {
	slots := make([][]core.Chunk, len(listings)+len(resumes))
	var wg sync.WaitGroup

	submit := func(slot int, task func() []core.Chunk) {
		wg.Add(1)
		run := func() {
			defer wg.Done()
			slots[slot] = task()
		}
		if err := p.pool.Submit(run); err != nil {
			// Pool unavailable; fall back to running inline.
			run()
		}
	}

	for i := range listings {
		listing := listings[i]
		submit(i, func() []core.Chunk {
			return chunks.Split(listing.Description, chunks.Options{
				SourceType: core.SourceTypeListing,
				SourceID:   listing.ListingID,
				Mapper:     mapper,
				Location: core.ParsedLocation{
					City:    listing.LocationCity,
					State:   listing.LocationState,
					Country: listing.LocationCountry,
					Mode:    core.WorkMode(listing.Mode),
				},
				PostedDate: listing.PostedDate,
				Source:     listing.Source,
			})
		})
	}
	for i := range resumes {
		resume := resumes[i]
		submit(len(listings)+i, func() []core.Chunk {
			return chunks.Split(resume.RawResumeText, chunks.Options{
				SourceType: core.SourceTypeResume,
				SourceID:   resume.UserID,
				Mapper:     mapper,
			})
		})
	}
	wg.Wait()

	var out []core.Chunk
	for _, slot := range slots {
		out = append(out, slot...)
	}
	return out
}
