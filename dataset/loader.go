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


package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadStructuredFiles reads every CSV and JSON file directly under dir and
// returns the union of their rows as string-keyed mappings. Column names are
// canonicalized to lowercase with underscores so datasets with different
// header conventions resolve the same. A missing directory yields no rows; a
// malformed file is logged and skipped rather than failing the run.
func LoadStructuredFiles(dir string, logger *slog.Logger) []map[string]string {
	if logger == nil {
		logger = slog.Default()
	}

	var rows []map[string]string
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("dataset directory missing", "dir", dir)
		return rows
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv":
			parsed, err := readCSV(path)
			if err != nil {
				logger.Error("failed reading CSV", "file", entry.Name(), "err", err)
				continue
			}
			rows = append(rows, parsed...)
		case ".json":
			parsed, err := readJSON(path)
			if err != nil {
				logger.Error("failed reading JSON", "file", entry.Name(), "err", err)
				continue
			}
			rows = append(rows, parsed...)
		}
	}
	return rows
}

// readCSV maps each data row to its header names. Short rows are padded
// with empty values; ragged files are common in scraped datasets.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	for i, name := range header {
		header[i] = normalizeColumn(name)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readJSON accepts a top-level array of flat objects, stringifying scalar
// values. Nested values are re-encoded as JSON text so list-valued fields
// survive round-tripping through the generic row shape.
func readJSON(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0, len(raw))
	for _, obj := range raw {
		row := make(map[string]string, len(obj))
		for key, value := range obj {
			row[normalizeColumn(key)] = stringify(value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeColumn canonicalizes a column name: lowercase with underscores,
// so "Company Name" and "company_name" resolve identically.
func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
