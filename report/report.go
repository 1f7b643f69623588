// Copyright 2025 Talentfold
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package report renders a run's data quality summary to report.json.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/ingestion"
)

// maxSamples caps every sample list in the report.
const maxSamples = 20

// DatasetStats mirrors ingestion.DatasetStats with the report's JSON shape.
type DatasetStats struct {
	RowsRead     int `json:"rowsRead"`
	RowsIngested int `json:"rowsIngested"`
	Duplicates   int `json:"duplicates"`
}

// ParseFailures is the per-heuristic failure tally.
type ParseFailures struct {
	Locations  int `json:"locations"`
	Stipend    int `json:"stipend"`
	PostedDate int `json:"postedDate"`
}

// Data is the flat structure written to report.json.
type Data struct {
	Datasets        map[string]DatasetStats `json:"datasets"`
	ParseFailures   ParseFailures           `json:"parseFailures"`
	SkillMappings   []string                `json:"skillMappings"`
	LocationSamples []string                `json:"locationSamples"`
	SampleListings  []core.Listing          `json:"sampleListings"`
}

// FromResult assembles report data from a clean-step result.
func FromResult(result *ingestion.Result, locationSamples []string) *Data {
	data := &Data{
		Datasets: make(map[string]DatasetStats, len(result.Datasets)),
		ParseFailures: ParseFailures{
			Locations:  result.Failures.Locations,
			Stipend:    result.Failures.Stipends,
			PostedDate: result.Failures.PostedDates,
		},
		SkillMappings:   truncate(result.MappingSamples),
		LocationSamples: truncate(locationSamples),
	}
	for alias, stats := range result.Datasets {
		data.Datasets[alias] = DatasetStats{
			RowsRead:     stats.RowsRead,
			RowsIngested: stats.RowsIngested,
			Duplicates:   stats.Duplicates,
		}
	}
	listings := result.Listings
	if len(listings) > maxSamples {
		listings = listings[:maxSamples]
	}
	data.SampleListings = listings
	return data
}

// Write renders data as indented JSON at path, creating parent directories.
func Write(path string, data *Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}

// Read loads a previously written report. A missing file returns nil data
// and no error.
func Read(path string) (*Data, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var data Data
	if err := json.Unmarshal(encoded, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func truncate(samples []string) []string {
	if len(samples) > maxSamples {
		return samples[:maxSamples]
	}
	return samples
}
