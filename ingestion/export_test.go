package ingestion

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentfold/ingest/core"
)

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	min := 10000
	years := 2.5
	result := &Result{
		Listings: []core.Listing{
			{ListingID: "l-1", Title: "Backend Intern", CompanyName: "Acme",
				LocationCity: "Pune", Skills: []string{"python", "sql"},
				StipendMinINR: &min},
		},
		Skills: []core.SkillRecord{
			{SkillID: "s-1", SkillName: "Python", Aliases: []string{"py"}},
		},
		Companies: []core.Company{
			{CompanyID: "c-1", CompanyName: "Acme"},
		},
		Resumes: []core.Resume{
			{UserID: "u-1", Name: "Asha", ExperienceYears: &years},
		},
		Chunks: []core.Chunk{
			{ChunkID: "l-1-0", SourceType: core.SourceTypeListing,
				SourceID: "l-1", Text: "Backend internship", TokensEstimate: 5},
		},
	}

	require.NoError(t, ExportCSV(dir, result))

	rows := readCSVFile(t, filepath.Join(dir, "listings.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, "listing_id", rows[0][0])
	assert.Equal(t, "Backend Intern", rows[1][1])
	assert.JSONEq(t, `["python","sql"]`, rows[1][7])
	assert.Equal(t, "10000", rows[1][8])
	assert.Equal(t, "", rows[1][9]) // nil max bound stays empty

	rows = readCSVFile(t, filepath.Join(dir, "resumes.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, "2.5", rows[1][3])

	rows = readCSVFile(t, filepath.Join(dir, "chunks.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, "l-1-0", rows[1][0])
	assert.Equal(t, "listing", rows[1][1])

	snapshot, err := os.ReadFile(filepath.Join(dir, "chunks.json"))
	require.NoError(t, err)
	assert.Contains(t, string(snapshot), "l-1-0")
}

func TestExportCSVEmptyResult(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportCSV(dir, &Result{}))

	rows := readCSVFile(t, filepath.Join(dir, "skills.csv"))
	require.Len(t, rows, 1) // header only
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
