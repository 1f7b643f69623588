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
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// fieldSpec is an ordered list of candidate column names for one logical
// field. Datasets disagree on naming; resolution is first non-empty wins.
type fieldSpec []string

// resolve returns the first non-empty value among the candidate keys.
func (f fieldSpec) resolve(row map[string]string) string {
	for _, key := range f {
		if value := strings.TrimSpace(row[key]); value != "" {
			return value
		}
	}
	return ""
}

// Candidate column names per logical field, kept as data rather than
// branching code.
var (
	listingIDFields     = fieldSpec{"listing_id", "id"}
	listingTitleFields  = fieldSpec{"title", "role", "jobtitle"}
	listingCompanyField = fieldSpec{"company_name", "company", "employer"}
	listingPlaceFields  = fieldSpec{"location", "city", "place"}
	listingPayFields    = fieldSpec{"stipend", "salary"}
	listingSkillFields  = fieldSpec{"skills", "skill"}
	listingDescFields   = fieldSpec{"description", "job_description"}
	listingURLFields    = fieldSpec{"application_url", "url"}
	listingPostedFields = fieldSpec{"posted_date", "posted"}
	categoryFields      = fieldSpec{"category", "domain"}
	sourceFields        = fieldSpec{"source", "dataset"}

	companyIDFields      = fieldSpec{"company_id", "id"}
	companyNameFields    = fieldSpec{"company_name", "name"}
	industryFields       = fieldSpec{"industry", "domain"}
	hqCityFields         = fieldSpec{"city", "headquarters_city"}
	hqCountryFields      = fieldSpec{"country", "headquarters_country"}
	companyURLFields     = fieldSpec{"company_url", "url"}
	companySizeFields    = fieldSpec{"size", "size_bucket"}
	skillIDFields        = fieldSpec{"skill_id", "id"}
	skillNameFields      = fieldSpec{"skill_name", "name", "skill"}
	skillCategoryFields  = fieldSpec{"skill_category", "category"}
	resumeIDFields       = fieldSpec{"user_id", "id"}
	resumeNameFields     = fieldSpec{"name", "candidate"}
	resumeEduFields      = fieldSpec{"education", "educational_details"}
	resumeProjectFields  = fieldSpec{"projects", "project"}
	resumeTextFields     = fieldSpec{"raw_resume_text", "summary"}
	resumeYearsFields    = fieldSpec{"experience_years"}
	listingDurationField = fieldSpec{"duration"}
	listingModeFields    = fieldSpec{"mode"}
)

var firstNumberRe = regexp.MustCompile(`\d+`)

// parseList accepts either a JSON array or a delimited string and returns
// the trimmed, non-empty entries.
func parseList(value string) []string {
	if value == "" {
		return nil
	}
	var parsed []string
	if err := json.Unmarshal([]byte(value), &parsed); err == nil {
		return parsed
	}
	var out []string
	for _, entry := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	}) {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// inferDuration pulls the first integer out of a free-text duration field.
func inferDuration(value string) *int {
	match := firstNumberRe.FindString(value)
	if match == "" {
		return nil
	}
	weeks, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &weeks
}

// parseFloat returns nil on anything that is not a clean number.
func parseFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
