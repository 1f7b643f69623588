package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/ingestion"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "report.json")

	original := &Data{
		Datasets: map[string]DatasetStats{
			"internshala": {RowsRead: 100, RowsIngested: 90, Duplicates: 10},
		},
		ParseFailures: ParseFailures{Locations: 3, Stipend: 5},
		SkillMappings: []string{"py -> Python"},
		SampleListings: []core.Listing{
			{ListingID: "l-1", Title: "Backend Intern", CompanyName: "Acme"},
		},
	}
	require.NoError(t, Write(path, original))

	loaded, err := Read(path)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, original.Datasets, loaded.Datasets)
	assert.Equal(t, original.ParseFailures, loaded.ParseFailures)
	assert.Equal(t, original.SkillMappings, loaded.SkillMappings)
	require.Len(t, loaded.SampleListings, 1)
	assert.Equal(t, "Backend Intern", loaded.SampleListings[0].Title)
}

func TestReadMissingFile(t *testing.T) {
	loaded, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFromResultTruncatesSamples(t *testing.T) {
	result := &ingestion.Result{
		Datasets: map[string]ingestion.DatasetStats{
			"skills": {RowsRead: 5, RowsIngested: 5},
		},
		Failures: ingestion.ParseFailures{Stipends: 2},
	}
	for i := 0; i < 30; i++ {
		result.MappingSamples = append(result.MappingSamples, "x -> X")
		result.Listings = append(result.Listings, core.Listing{Title: "Intern"})
	}

	data := FromResult(result, nil)
	assert.Len(t, data.SkillMappings, maxSamples)
	assert.Len(t, data.SampleListings, maxSamples)
	assert.Equal(t, 2, data.ParseFailures.Stipend)
	assert.Equal(t, 5, data.Datasets["skills"].RowsRead)
}
