package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func TestLoadStructuredFiles(t *testing.T) {
	t.Run("reads csv with headers", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "listings.csv", "title,company\nBackend Intern,Acme\nData Intern,Globex\n")

		rows := LoadStructuredFiles(dir, nil)
		require.Len(t, rows, 2)
		assert.Equal(t, "Backend Intern", rows[0]["title"])
		assert.Equal(t, "Globex", rows[1]["company"])
	})

	t.Run("canonicalizes column names", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "listings.csv", "Title,Company Name\nBackend Intern,Acme\n")

		rows := LoadStructuredFiles(dir, nil)
		require.Len(t, rows, 1)
		assert.Equal(t, "Backend Intern", rows[0]["title"])
		assert.Equal(t, "Acme", rows[0]["company_name"])
	})

	t.Run("pads short csv rows", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "ragged.csv", "a,b,c\n1,2\n")

		rows := LoadStructuredFiles(dir, nil)
		require.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0]["b"])
		assert.Equal(t, "", rows[0]["c"])
	})

	t.Run("reads json arrays and stringifies values", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "skills.json", `[{"name":"Python","rank":1,"aliases":["py"]}]`)

		rows := LoadStructuredFiles(dir, nil)
		require.Len(t, rows, 1)
		assert.Equal(t, "Python", rows[0]["name"])
		assert.Equal(t, "1", rows[0]["rank"])
		assert.JSONEq(t, `["py"]`, rows[0]["aliases"])
	})

	t.Run("merges multiple files and skips malformed ones", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "good.csv", "title\nIntern\n")
		writeFile(t, dir, "bad.json", "{not json")
		writeFile(t, dir, "ignored.txt", "nothing")

		rows := LoadStructuredFiles(dir, nil)
		require.Len(t, rows, 1)
		assert.Equal(t, "Intern", rows[0]["title"])
	})

	t.Run("missing directory yields no rows", func(t *testing.T) {
		rows := LoadStructuredFiles(filepath.Join(t.TempDir(), "absent"), nil)
		assert.Empty(t, rows)
	})
}

func TestDownloaderFallsBackToSample(t *testing.T) {
	rawDir := t.TempDir()
	samplesDir := t.TempDir()
	writeFile(t, samplesDir, "listings_sample.csv", "title,company\nIntern,Acme\n")

	d := NewDownloader(rawDir, samplesDir)
	spec := Spec{Slug: "someone/some-dataset", Alias: "sample-test", Type: TypeListings}

	require.NoError(t, d.Download(context.Background(), spec))

	rows := LoadStructuredFiles(filepath.Join(rawDir, spec.Alias), nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0]["company"])
}

func TestDownloaderUnknownSampleType(t *testing.T) {
	d := NewDownloader(t.TempDir(), t.TempDir())
	err := d.Download(context.Background(), Spec{Alias: "weird", Type: Type("unknown")})
	assert.Error(t, err)
}
