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


package ingestion

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// ExportCSV writes the cleaned tables as CSV files under dir, plus a JSON
// snapshot of the chunk table. List-valued columns are JSON-encoded, the
// same convention the SQLite loader uses.
func ExportCSV(dir string, result *Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	listings := [][]string{{
		"listing_id", "title", "company_id", "company_name", "city", "state",
		"country", "skills", "stipend_min_inr", "stipend_max_inr",
		"duration_weeks", "mode", "category", "description",
		"application_url", "posted_date", "source",
	}}
	for _, l := range result.Listings {
		listings = append(listings, []string{
			l.ListingID, l.Title, l.CompanyID, l.CompanyName,
			l.LocationCity, l.LocationState, l.LocationCountry,
			jsonList(l.Skills), intString(l.StipendMinINR),
			intString(l.StipendMaxINR), intString(l.DurationWeeks),
			l.Mode, l.Category, l.Description, l.ApplicationURL,
			l.PostedDate, l.Source,
		})
	}
	if err := writeCSV(filepath.Join(dir, "listings.csv"), listings); err != nil {
		return err
	}

	skills := [][]string{{"skill_id", "skill_name", "skill_category", "aliases"}}
	for _, s := range result.Skills {
		skills = append(skills, []string{
			s.SkillID, s.SkillName, s.SkillCategory, jsonList(s.Aliases),
		})
	}
	if err := writeCSV(filepath.Join(dir, "skills.csv"), skills); err != nil {
		return err
	}

	companies := [][]string{{
		"company_id", "company_name", "industry", "headquarters_city",
		"headquarters_country", "company_url", "size_bucket", "source",
	}}
	for _, c := range result.Companies {
		companies = append(companies, []string{
			c.CompanyID, c.CompanyName, c.Industry, c.HeadquartersCity,
			c.HeadquartersCountry, c.CompanyURL, c.SizeBucket, c.Source,
		})
	}
	if err := writeCSV(filepath.Join(dir, "companies.csv"), companies); err != nil {
		return err
	}

	resumes := [][]string{{
		"user_id", "name", "education", "experience_years", "skills",
		"projects", "raw_resume_text", "source",
	}}
	for _, r := range result.Resumes {
		years := ""
		if r.ExperienceYears != nil {
			years = strconv.FormatFloat(*r.ExperienceYears, 'f', -1, 64)
		}
		resumes = append(resumes, []string{
			r.UserID, r.Name, jsonList(r.Education), years,
			jsonList(r.Skills), r.Projects, r.RawResumeText, r.Source,
		})
	}
	if err := writeCSV(filepath.Join(dir, "resumes.csv"), resumes); err != nil {
		return err
	}

	chunks := [][]string{{
		"chunk_id", "source_type", "source_id", "chunk_index", "text",
		"tokens_estimate", "top_skills", "city", "state", "country",
		"mode", "posted_date", "source",
	}}
	for _, ch := range result.Chunks {
		chunks = append(chunks, []string{
			ch.ChunkID, string(ch.SourceType), ch.SourceID,
			strconv.Itoa(ch.ChunkIndex), ch.Text,
			strconv.Itoa(ch.TokensEstimate), jsonList(ch.TopSkills),
			ch.LocationCity, ch.LocationState, ch.LocationCountry,
			ch.Mode, ch.PostedDate, ch.Source,
		})
	}
	if err := writeCSV(filepath.Join(dir, "chunks.csv"), chunks); err != nil {
		return err
	}

	snapshot, err := json.MarshalIndent(result.Chunks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "chunks.json"), snapshot, 0644)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func jsonList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func intString(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
